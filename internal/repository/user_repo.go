package repository

import (
	"context"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// RoleCount is one row of the per-role user statistics.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns users newest first, optionally filtered by role.
// Password hashes never leave the domain struct's json:"-" field.
func (r *UserRepository) List(ctx context.Context, role string) ([]domain.User, error) {
	q := r.db.WithContext(ctx)
	if role != "" && role != "all" {
		q = q.Where("role = ?", role)
	}

	var users []domain.User
	err := q.Order("created_at DESC").Find(&users).Error
	return users, err
}

// CountByRole always runs over the full table, regardless of any role filter
// applied to the listing itself.
func (r *UserRepository) CountByRole(ctx context.Context) ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}
