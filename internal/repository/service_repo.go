package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ServiceDetails is a service row with its partner's contact fields joined in.
type ServiceDetails struct {
	ID                 int64     `json:"id"`
	PartnerID          *int64    `json:"partner_id,omitempty"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Description        string    `json:"description,omitempty"`
	Price              *float64  `json:"price,omitempty"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
	PartnerName        string    `json:"partner_name,omitempty"`
	PartnerPhone       string    `json:"partner_phone,omitempty"`
	PartnerEmail       string    `json:"partner_email,omitempty"`
	PartnerDescription string    `json:"partner_description,omitempty"`
}

func (r *ServiceRepository) ListAvailable(ctx context.Context, serviceType string, partnerID *int64) ([]ServiceDetails, error) {
	q := r.db.WithContext(ctx).
		Table("services s").
		Select("s.id, s.partner_id, s.name, s.type, s.description, s.price, s.is_available, s.created_at, p.name AS partner_name, p.phone AS partner_phone").
		Joins("LEFT JOIN partners p ON p.id = s.partner_id").
		Where("s.is_available = ?", true)

	if serviceType != "" {
		q = q.Where("s.type = ?", serviceType)
	}
	if partnerID != nil {
		q = q.Where("s.partner_id = ?", *partnerID)
	}

	var rows []ServiceDetails
	err := q.Order("s.name").Scan(&rows).Error
	return rows, err
}

func (r *ServiceRepository) GetDetailsByID(ctx context.Context, id int64) (*ServiceDetails, error) {
	var row ServiceDetails
	tx := r.db.WithContext(ctx).
		Table("services s").
		Select(`s.id, s.partner_id, s.name, s.type, s.description, s.price, s.is_available, s.created_at,
p.name AS partner_name, p.phone AS partner_phone, p.email AS partner_email, p.description AS partner_description`).
		Joins("LEFT JOIN partners p ON p.id = s.partner_id").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
