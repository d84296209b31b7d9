package repository

import (
	"context"
	"encoding/json"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// IssueDetails is an issue row with the property name joined in.
type IssueDetails struct {
	ID           int64           `json:"id"`
	BookingID    int64           `json:"booking_id"`
	PropertyID   int64           `json:"property_id"`
	GuestID      int64           `json:"guest_id"`
	IssueType    string          `json:"issue_type"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Images       json.RawMessage `json:"images,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	PropertyName string          `json:"property_name"`
}

func (r *IssueRepository) Create(ctx context.Context, i *domain.Issue) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *IssueRepository) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	var i domain.Issue
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepository) ListByGuest(ctx context.Context, guestID int64) ([]IssueDetails, error) {
	var rows []IssueDetails
	err := r.db.WithContext(ctx).
		Table("issues i").
		Select("i.id, i.booking_id, i.property_id, i.guest_id, i.issue_type, i.title, i.description, i.images, i.status, i.created_at, p.name AS property_name").
		Joins("LEFT JOIN properties p ON p.id = i.property_id").
		Where("i.guest_id = ?", guestID).
		Order("i.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
