package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

type SlotModel struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	TutorID  int64     `gorm:"column:tutor_id;index"`
	Start    time.Time `gorm:"column:start_time"`
	End      time.Time `gorm:"column:end_time"`
	IsBooked bool      `gorm:"column:is_booked"`
}

func (SlotModel) TableName() string { return "slots" }

func toDomainSlot(m SlotModel) domain.Slot {
	return domain.Slot{
		ID:       m.ID,
		TutorID:  m.TutorID,
		Start:    m.Start,
		End:      m.End,
		IsBooked: m.IsBooked,
	}
}

func toSlotModel(s *domain.Slot) SlotModel {
	return SlotModel{
		ID:       s.ID,
		TutorID:  s.TutorID,
		Start:    s.Start,
		End:      s.End,
		IsBooked: s.IsBooked,
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	m := toSlotModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = toDomainSlot(m)
	return nil
}

// CreateBatch inserts every slot in one statement; the whole batch fails
// together on any error.
func (r *SlotRepository) CreateBatch(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	if len(slots) == 0 {
		return []domain.Slot{}, nil
	}

	rows := make([]SlotModel, 0, len(slots))
	for i := range slots {
		rows = append(rows, toSlotModel(&slots[i]))
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Slot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	var m SlotModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	s := toDomainSlot(m)
	return &s, nil
}

// List returns slots ordered by start time. tutorID of zero means all tutors;
// booked slots are filtered out unless includeBooked is set.
func (r *SlotRepository) List(ctx context.Context, tutorID int64, includeBooked bool) ([]domain.Slot, error) {
	q := r.db.WithContext(ctx).Model(&SlotModel{})
	if tutorID > 0 {
		q = q.Where("tutor_id = ?", tutorID)
	}
	if !includeBooked {
		q = q.Where("is_booked = ?", false)
	}

	var rows []SlotModel
	if err := q.Order("start_time").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Slot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out, nil
}

func (r *SlotRepository) Update(ctx context.Context, s *domain.Slot) error {
	tx := r.db.WithContext(ctx).
		Model(&SlotModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"start_time": s.Start,
			"end_time":   s.End,
			"is_booked":  s.IsBooked,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&SlotModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reserve flips is_booked in a single conditional UPDATE so that two
// concurrent booking attempts for the same slot can never both succeed.
// A zero row count means the slot was already booked or absent.
func (r *SlotRepository) Reserve(ctx context.Context, id int64) (*domain.Slot, error) {
	tx := r.db.WithContext(ctx).
		Model(&SlotModel{}).
		Where("id = ? AND is_booked = ?", id, false).
		Update("is_booked", true)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrSlotTaken
	}
	return r.GetByID(ctx, id)
}

// Release marks the slot available again. Unconditional and idempotent:
// releasing an already-free or missing slot is not an error.
func (r *SlotRepository) Release(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&SlotModel{}).
		Where("id = ?", id).
		Update("is_booked", false).Error
}
