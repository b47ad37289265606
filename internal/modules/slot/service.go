package slot

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

const dateLayout = "2006-01-02"

type Service struct {
	slots SlotRepository
}

func NewService(slots SlotRepository) *Service {
	return &Service{slots: slots}
}

func (s *Service) Create(ctx context.Context, tutorID int64, req CreateSlotRequest) (*domain.Slot, error) {
	if !req.End.After(req.Start) {
		return nil, ErrValidation
	}

	sl := &domain.Slot{
		TutorID: tutorID,
		Start:   req.Start,
		End:     req.End,
	}
	if err := s.slots.Create(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

// CreateBulk validates every window up front and inserts the expanded batch
// in one statement. Without a date range the windows are inserted as given;
// with one, each window repeats weekly across the range on its own weekday.
// Overlaps between windows are not checked.
func (s *Service) CreateBulk(ctx context.Context, tutorID int64, req BulkCreateRequest) ([]domain.Slot, error) {
	if len(req.Slots) == 0 {
		return nil, ErrValidation
	}
	for _, w := range req.Slots {
		if !w.End.After(w.Start) {
			return nil, ErrValidation
		}
	}

	instances, err := expandWindows(tutorID, req)
	if err != nil {
		return nil, err
	}
	return s.slots.CreateBatch(ctx, instances)
}

func expandWindows(tutorID int64, req BulkCreateRequest) ([]domain.Slot, error) {
	if req.StartDate == "" && req.EndDate == "" {
		out := make([]domain.Slot, 0, len(req.Slots))
		for _, w := range req.Slots {
			out = append(out, domain.Slot{TutorID: tutorID, Start: w.Start, End: w.End})
		}
		return out, nil
	}

	from, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	to, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if to.Before(from) {
		return nil, ErrValidation
	}

	var out []domain.Slot
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, w := range req.Slots {
			if day.Weekday() != w.Start.Weekday() {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(),
				w.Start.Hour(), w.Start.Minute(), w.Start.Second(), 0, w.Start.Location())
			out = append(out, domain.Slot{
				TutorID: tutorID,
				Start:   start,
				End:     start.Add(w.End.Sub(w.Start)),
			})
		}
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, tutorID int64, includeBooked bool) ([]domain.Slot, error) {
	return s.slots.List(ctx, tutorID, includeBooked)
}

func (s *Service) Update(ctx context.Context, slotID, ownerID int64, req UpdateSlotRequest) (*domain.Slot, error) {
	sl, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sl.TutorID != ownerID {
		return nil, ErrForbidden
	}

	if req.Start != nil {
		sl.Start = *req.Start
	}
	if req.End != nil {
		sl.End = *req.End
	}
	if req.IsBooked != nil {
		sl.IsBooked = *req.IsBooked
	}
	if !sl.End.After(sl.Start) {
		return nil, ErrValidation
	}

	if err := s.slots.Update(ctx, sl); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sl, nil
}

// Delete refuses to remove a slot that is currently booked; the booking
// keeping it reserved would otherwise lose its time window.
func (s *Service) Delete(ctx context.Context, slotID, ownerID int64) error {
	sl, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if sl.TutorID != ownerID {
		return ErrForbidden
	}
	if sl.IsBooked {
		return ErrSlotBooked
	}

	if err := s.slots.Delete(ctx, slotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
