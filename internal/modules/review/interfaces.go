package review

import (
	"context"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForReviewer(ctx context.Context, bookingID, reviewerID int64) (bool, error)
	GetForBooking(ctx context.Context, bookingID, reviewerID int64) (*domain.Review, error)
	ListForReviewee(ctx context.Context, userID int64) ([]repository.ReviewRow, error)
	AggregateForUser(ctx context.Context, userID int64) (repository.RatingAgg, error)
}

// BookingGate exposes the booking lookup the eligibility checks run against.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
