package repository

import (
	"context"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	var p domain.Partner
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepository) ListActive(ctx context.Context, serviceType string) ([]domain.Partner, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if serviceType != "" {
		q = q.Where("service_type = ?", serviceType)
	}

	var partners []domain.Partner
	err := q.Order("name").Find(&partners).Error
	return partners, err
}
