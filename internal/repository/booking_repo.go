package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type BookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	TutorID   int64     `gorm:"column:tutor_id;index"`
	StudentID int64     `gorm:"column:student_id;index"`
	SlotID    *int64    `gorm:"column:slot_id"`
	Status    string    `gorm:"column:status"`
	Price     *float64  `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (BookingModel) TableName() string { return "bookings" }

func toDomainBooking(m BookingModel) domain.Booking {
	return domain.Booking{
		ID:        m.ID,
		TutorID:   m.TutorID,
		StudentID: m.StudentID,
		SlotID:    m.SlotID,
		Status:    domain.BookingStatus(m.Status),
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := BookingModel{
		TutorID:   b.TutorID,
		StudentID: b.StudentID,
		SlotID:    b.SlotID,
		Status:    string(b.Status),
		Price:     b.Price,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m BookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	b := toDomainBooking(m)
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BookingRow is a booking joined with participant names and the slot window,
// as shown in the "my bookings" listing.
type BookingRow struct {
	ID          int64      `gorm:"column:id" json:"id"`
	Status      string     `gorm:"column:status" json:"status"`
	Price       *float64   `gorm:"column:price" json:"price,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	TutorID     int64      `gorm:"column:tutor_id" json:"tutor_id"`
	TutorName   string     `gorm:"column:tutor_name" json:"tutor_name"`
	StudentID   int64      `gorm:"column:student_id" json:"student_id"`
	StudentName string     `gorm:"column:student_name" json:"student_name"`
	SlotID      *int64     `gorm:"column:slot_id" json:"slot_id,omitempty"`
	SlotStart   *time.Time `gorm:"column:slot_start" json:"slot_start,omitempty"`
	SlotEnd     *time.Time `gorm:"column:slot_end" json:"slot_end,omitempty"`
}

// ListForUser returns the bookings where the user appears on the given side,
// newest first, with tutor/student/slot references resolved in one query.
func (r *BookingRepository) ListForUser(ctx context.Context, userID int64, asTutor bool) ([]BookingRow, error) {
	column := "b.student_id"
	if asTutor {
		column = "b.tutor_id"
	}

	q := `
SELECT
  b.id,
  b.status,
  b.price,
  b.created_at,
  b.tutor_id,
  t.name AS tutor_name,
  b.student_id,
  st.name AS student_name,
  b.slot_id,
  s.start_time AS slot_start,
  s.end_time AS slot_end
FROM bookings b
JOIN users t ON t.id = b.tutor_id
JOIN users st ON st.id = b.student_id
LEFT JOIN slots s ON s.id = b.slot_id
WHERE ` + column + ` = ?
ORDER BY b.created_at DESC
`
	var rows []BookingRow
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
