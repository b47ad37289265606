package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type UserModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Role         string    `gorm:"column:role;index"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	AvatarURL    string    `gorm:"column:avatar_url"`
	Bio          string    `gorm:"column:bio"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserModel) TableName() string { return "users" }

func toDomainUser(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Role:         domain.Role(m.Role),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		AvatarURL:    m.AvatarURL,
		Bio:          m.Bio,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := UserModel{
		Role:         string(u.Role),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		AvatarURL:    u.AvatarURL,
		Bio:          u.Bio,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

// ListByRole returns users of the given role, optionally filtered by a
// case-insensitive name substring, ordered by name.
func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role, nameQuery string) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Where("role = ?", string(role))
	if nameQuery != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+nameQuery+"%")
	}

	var rows []UserModel
	if err := q.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainUser(m))
	}
	return out, nil
}
