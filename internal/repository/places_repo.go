package repository

import (
	"context"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type PlacesRepository struct {
	db *gorm.DB
}

func NewPlacesRepository(db *gorm.DB) *PlacesRepository {
	return &PlacesRepository{db: db}
}

func (r *PlacesRepository) ListLocations(ctx context.Context, propertyID int64, locType string) ([]domain.MapLocation, error) {
	q := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if locType != "" {
		q = q.Where("type = ?", locType)
	}

	var locations []domain.MapLocation
	err := q.Order("type, name").Find(&locations).Error
	return locations, err
}

func (r *PlacesRepository) ListEmergencyContacts(ctx context.Context, propertyID int64) ([]domain.EmergencyContact, error) {
	var contacts []domain.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("service_type").
		Find(&contacts).Error
	return contacts, err
}
