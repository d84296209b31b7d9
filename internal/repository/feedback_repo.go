package repository

import (
	"context"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// FeedbackDetails is a feedback row with the guest's name joined in.
type FeedbackDetails struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var f domain.Feedback
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) ListByProperty(ctx context.Context, propertyID int64) ([]FeedbackDetails, error) {
	var rows []FeedbackDetails
	err := r.db.WithContext(ctx).
		Table("guest_feedback gf").
		Select("gf.id, gf.booking_id, gf.property_id, gf.guest_id, gf.rating, gf.comments, gf.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = gf.guest_id").
		Where("gf.property_id = ?", propertyID).
		Order("gf.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
