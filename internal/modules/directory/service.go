package directory

import (
	"context"
	"math"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type UserSource interface {
	ListByRole(ctx context.Context, role domain.Role, nameQuery string) ([]domain.User, error)
}

type ProfileSource interface {
	GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64]domain.TutorProfile, error)
}

type RatingSource interface {
	AggregateForUsers(ctx context.Context, userIDs []int64) (map[int64]repository.RatingAgg, error)
}

type Service struct {
	users    UserSource
	profiles ProfileSource
	ratings  RatingSource
}

func NewService(users UserSource, profiles ProfileSource, ratings RatingSource) *Service {
	return &Service{users: users, profiles: profiles, ratings: ratings}
}

// ListTutors composes the public tutor cards: one query for the tutor-role
// users (optionally name-filtered), one for their profiles, one GROUP BY for
// the rating aggregates. No per-tutor round trips.
func (s *Service) ListTutors(ctx context.Context, nameQuery string) ([]TutorCard, error) {
	tutors, err := s.users.ListByRole(ctx, domain.RoleTutor, nameQuery)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(tutors))
	for _, t := range tutors {
		ids = append(ids, t.ID)
	}

	profiles, err := s.profiles.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	aggs, err := s.ratings.AggregateForUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]TutorCard, 0, len(tutors))
	for _, t := range tutors {
		card := TutorCard{
			ID:        t.ID,
			Name:      t.Name,
			AvatarURL: t.AvatarURL,
			Bio:       t.Bio,
		}
		if p, ok := profiles[t.ID]; ok {
			if p.Bio != "" {
				card.Bio = p.Bio
			}
			card.HourlyRate = p.HourlyRate
			card.Subjects = p.Subjects
			card.YearsExperience = p.YearsExperience
			card.Location = p.Location
			card.OnlineOnly = p.OnlineOnly
		}
		if agg, ok := aggs[t.ID]; ok && agg.Total > 0 {
			rating := math.Round(agg.AvgRating*10) / 10
			card.Rating = &rating
			card.TotalReviews = agg.Total
		}
		cards = append(cards, card)
	}
	return cards, nil
}
