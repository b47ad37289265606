package review

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	users    UserDirectory
}

func NewService(reviews ReviewRepository, bookings BookingGate, users UserDirectory) *Service {
	return &Service{reviews: reviews, bookings: bookings, users: users}
}

// Create runs the full eligibility chain: rating range, booking existence,
// completed status, participant check, then the one-review-per-reviewer rule.
// The reviewee is always the other participant of the booking.
func (s *Service) Create(ctx context.Context, reviewerID int64, req CreateReviewRequest) (*ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrNotCompleted
	}
	if !b.Participant(reviewerID) {
		return nil, ErrForbidden
	}

	exists, err := s.reviews.ExistsForReviewer(ctx, req.BookingID, reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	rv := &domain.Review{
		BookingID:  req.BookingID,
		ReviewerID: reviewerID,
		RevieweeID: b.OtherParticipant(reviewerID),
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		// The unique index on (booking_id, reviewer_id) is the backstop for
		// two simultaneous submissions racing past the exists check.
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	resp := &ReviewResponse{Review: *rv}
	if reviewer, err := s.users.GetByID(ctx, rv.ReviewerID); err == nil {
		resp.ReviewerName = reviewer.Name
	}
	if reviewee, err := s.users.GetByID(ctx, rv.RevieweeID); err == nil {
		resp.RevieweeName = reviewee.Name
	}
	return resp, nil
}

// GetForUser returns the reviews left about a user, newest first, with the
// rounded average rating. avgRating is 0 (not null) when no reviews exist.
func (s *Service) GetForUser(ctx context.Context, userID int64) ([]repository.ReviewRow, float64, int64, error) {
	rows, err := s.reviews.ListForReviewee(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	agg, err := s.reviews.AggregateForUser(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	avg := math.Round(agg.AvgRating*10) / 10
	return rows, avg, agg.Total, nil
}

// GetForBooking returns the caller's review on a booking, or nil when none
// exists; clients use it to decide whether "leave review" is still available.
func (s *Service) GetForBooking(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error) {
	return s.reviews.GetForBooking(ctx, bookingID, reviewerID)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}
