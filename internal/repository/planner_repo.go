package repository

import (
	"context"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type PlannerRepository struct {
	db *gorm.DB
}

func NewPlannerRepository(db *gorm.DB) *PlannerRepository {
	return &PlannerRepository{db: db}
}

// SavedLocationDetails is a saved location joined with the underlying map
// location so the client can render it without a second fetch.
type SavedLocationDetails struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	LocationID int64     `json:"location_id"`
	CustomName string    `json:"custom_name,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

const savedLocationSelect = `sl.id, sl.guest_id, sl.location_id, sl.custom_name, sl.notes, sl.created_at,
ml.name, ml.type, ml.description, ml.address, ml.latitude, ml.longitude`

func (r *PlannerRepository) SaveLocation(ctx context.Context, s *domain.SavedLocation) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PlannerRepository) GetSavedDetails(ctx context.Context, id int64) (*SavedLocationDetails, error) {
	var row SavedLocationDetails
	tx := r.db.WithContext(ctx).
		Table("saved_locations sl").
		Select(savedLocationSelect).
		Joins("JOIN map_locations ml ON ml.id = sl.location_id").
		Where("sl.id = ?", id).
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

func (r *PlannerRepository) ListSaved(ctx context.Context, guestID int64) ([]SavedLocationDetails, error) {
	var rows []SavedLocationDetails
	err := r.db.WithContext(ctx).
		Table("saved_locations sl").
		Select(savedLocationSelect).
		Joins("JOIN map_locations ml ON ml.id = sl.location_id").
		Where("sl.guest_id = ?", guestID).
		Order("sl.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PlannerRepository) DeleteSaved(ctx context.Context, id, guestID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND guest_id = ?", id, guestID).
		Delete(&domain.SavedLocation{}).Error
}

func (r *PlannerRepository) CreateItinerary(ctx context.Context, it *domain.Itinerary) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *PlannerRepository) GetItinerary(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var it domain.Itinerary
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PlannerRepository) ListItineraries(ctx context.Context, guestID int64, bookingID *int64) ([]domain.Itinerary, error) {
	q := r.db.WithContext(ctx).Where("guest_id = ?", guestID)
	if bookingID != nil {
		q = q.Where("booking_id = ?", *bookingID)
	}

	var items []domain.Itinerary
	err := q.Order("date DESC, created_at DESC").Find(&items).Error
	return items, err
}

// UpdateItinerary overwrites title/date/activities, scoped to the owner.
// Read-modify-save so the json serializer on activities applies.
func (r *PlannerRepository) UpdateItinerary(ctx context.Context, id, guestID int64, title, date string, activities any) (*domain.Itinerary, error) {
	var it domain.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND guest_id = ?", id, guestID).
		First(&it).Error
	if err != nil {
		return nil, err
	}

	it.Title = title
	it.Date = date
	it.Activities = activities
	if err := r.db.WithContext(ctx).Save(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PlannerRepository) DeleteItinerary(ctx context.Context, id, guestID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND guest_id = ?", id, guestID).
		Delete(&domain.Itinerary{}).Error
}
