package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type TutorProfileRepository struct {
	db *gorm.DB
}

func NewTutorProfileRepository(db *gorm.DB) *TutorProfileRepository {
	return &TutorProfileRepository{db: db}
}

type TutorProfileModel struct {
	ID              int64   `gorm:"column:id;primaryKey"`
	UserID          int64   `gorm:"column:user_id;uniqueIndex"`
	Bio             string  `gorm:"column:bio"`
	HourlyRate      float64 `gorm:"column:hourly_rate"`
	Subjects        string  `gorm:"column:subjects"`
	YearsExperience int     `gorm:"column:years_experience"`
	Location        string  `gorm:"column:location"`
	OnlineOnly      bool    `gorm:"column:online_only"`
}

func (TutorProfileModel) TableName() string { return "tutor_profiles" }

// Subjects are stored comma-joined so the same schema works on both
// PostgreSQL and SQLite.
func toDomainProfile(m TutorProfileModel) domain.TutorProfile {
	var subjects []string
	if m.Subjects != "" {
		subjects = strings.Split(m.Subjects, ",")
	}
	return domain.TutorProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Bio:             m.Bio,
		HourlyRate:      m.HourlyRate,
		Subjects:        subjects,
		YearsExperience: m.YearsExperience,
		Location:        m.Location,
		OnlineOnly:      m.OnlineOnly,
	}
}

func toProfileModel(p *domain.TutorProfile) TutorProfileModel {
	return TutorProfileModel{
		ID:              p.ID,
		UserID:          p.UserID,
		Bio:             p.Bio,
		HourlyRate:      p.HourlyRate,
		Subjects:        strings.Join(p.Subjects, ","),
		YearsExperience: p.YearsExperience,
		Location:        p.Location,
		OnlineOnly:      p.OnlineOnly,
	}
}

func (r *TutorProfileRepository) Create(ctx context.Context, p *domain.TutorProfile) error {
	m := toProfileModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = toDomainProfile(m)
	return nil
}

func (r *TutorProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.TutorProfile, error) {
	var m TutorProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}
	p := toDomainProfile(m)
	return &p, nil
}

// GetByUserIDs loads profiles for a batch of tutors in one query, keyed by
// user id. Tutors without a profile are simply absent from the map.
func (r *TutorProfileRepository) GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64]domain.TutorProfile, error) {
	out := make(map[int64]domain.TutorProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []TutorProfileModel
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, m := range rows {
		out[m.UserID] = toDomainProfile(m)
	}
	return out, nil
}
