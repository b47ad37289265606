package booking

import (
	"context"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListForUser(ctx context.Context, userID int64, asTutor bool) ([]repository.BookingRow, error)
}

// SlotStore is the reservation side of the slot repository. Reserve must be
// a single atomic compare-and-set against the backing store.
type SlotStore interface {
	Reserve(ctx context.Context, id int64) (*domain.Slot, error)
	Release(ctx context.Context, id int64) error
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RateSource interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.TutorProfile, error)
}
