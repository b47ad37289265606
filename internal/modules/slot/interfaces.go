package slot

import (
	"context"

	"tutormatch/internal/domain"
)

// SlotRepository is the store-side contract for availability windows. The
// atomic reserve/release pair is consumed by the booking module, not here.
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) error
	CreateBatch(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context, tutorID int64, includeBooked bool) ([]domain.Slot, error)
	Update(ctx context.Context, s *domain.Slot) error
	Delete(ctx context.Context, id int64) error
}
