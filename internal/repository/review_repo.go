package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type ReviewModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;uniqueIndex:idx_booking_reviewer"`
	ReviewerID int64     `gorm:"column:reviewer_id;uniqueIndex:idx_booking_reviewer"`
	RevieweeID int64     `gorm:"column:reviewee_id;index"`
	Rating     int       `gorm:"column:rating"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ReviewModel) TableName() string { return "reviews" }

func toDomainReview(m ReviewModel) domain.Review {
	return domain.Review{
		ID:         m.ID,
		BookingID:  m.BookingID,
		ReviewerID: m.ReviewerID,
		RevieweeID: m.RevieweeID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := ReviewModel{
		BookingID:  rv.BookingID,
		ReviewerID: rv.ReviewerID,
		RevieweeID: rv.RevieweeID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ExistsForReviewer(ctx context.Context, bookingID, reviewerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Where("booking_id = ? AND reviewer_id = ?", bookingID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

// GetForBooking returns the reviewer's review on the booking, or nil when no
// review has been left yet.
func (r *ReviewRepository) GetForBooking(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error) {
	var m ReviewModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND reviewer_id = ?", bookingID, reviewerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	rv := toDomainReview(m)
	return &rv, nil
}

// ReviewRow joins a review with the reviewer's display name.
type ReviewRow struct {
	ID           int64     `gorm:"column:id" json:"id"`
	BookingID    int64     `gorm:"column:booking_id" json:"booking_id"`
	ReviewerID   int64     `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewerName string    `gorm:"column:reviewer_name" json:"reviewer_name"`
	RevieweeID   int64     `gorm:"column:reviewee_id" json:"reviewee_id"`
	Rating       int       `gorm:"column:rating" json:"rating"`
	Comment      string    `gorm:"column:comment" json:"comment,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (r *ReviewRepository) ListForReviewee(ctx context.Context, userID int64) ([]ReviewRow, error) {
	q := `
SELECT
  r.id,
  r.booking_id,
  r.reviewer_id,
  u.name AS reviewer_name,
  r.reviewee_id,
  r.rating,
  r.comment,
  r.created_at
FROM reviews r
JOIN users u ON u.id = r.reviewer_id
WHERE r.reviewee_id = ?
ORDER BY r.created_at DESC
`
	var rows []ReviewRow
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// RatingAgg is the per-user review aggregate.
type RatingAgg struct {
	RevieweeID int64   `gorm:"column:reviewee_id"`
	AvgRating  float64 `gorm:"column:avg_rating"`
	Total      int64   `gorm:"column:total"`
}

func (r *ReviewRepository) AggregateForUser(ctx context.Context, userID int64) (RatingAgg, error) {
	var agg RatingAgg
	err := r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Select("reviewee_id, COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total").
		Where("reviewee_id = ?", userID).
		Group("reviewee_id").
		Scan(&agg).Error
	if err != nil {
		return RatingAgg{}, err
	}
	agg.RevieweeID = userID
	return agg, nil
}

// AggregateForUsers computes rating aggregates for a batch of users in a
// single GROUP BY query. Users without reviews are absent from the map.
func (r *ReviewRepository) AggregateForUsers(ctx context.Context, userIDs []int64) (map[int64]RatingAgg, error) {
	out := make(map[int64]RatingAgg, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []RatingAgg
	err := r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Select("reviewee_id, AVG(rating) AS avg_rating, COUNT(*) AS total").
		Where("reviewee_id IN ?", userIDs).
		Group("reviewee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, agg := range rows {
		out[agg.RevieweeID] = agg
	}
	return out, nil
}
