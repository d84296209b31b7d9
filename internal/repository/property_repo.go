package repository

import (
	"context"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) ListEquipment(ctx context.Context, propertyID int64) ([]domain.EquipmentInstruction, error) {
	var items []domain.EquipmentInstruction
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("equipment_name").
		Find(&items).Error
	return items, err
}

func (r *PropertyRepository) ListHouseRules(ctx context.Context, propertyID int64) ([]domain.HouseRule, error) {
	var rules []domain.HouseRule
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Find(&rules).Error
	return rules, err
}

// ActiveBooking returns the guest's booking at the property that covers
// today, newest check-in first when several overlap.
func (r *PropertyRepository) ActiveBooking(ctx context.Context, propertyID, guestID int64, now time.Time) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("property_id = ? AND guest_id = ?", propertyID, guestID).
		Where("status = ?", domain.BookingActive).
		Where("check_in_date <= ? AND check_out_date >= ?", now, now).
		Order("check_in_date DESC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}
