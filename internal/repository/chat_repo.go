package repository

import (
	"context"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// MessageDetails is a chat message joined with its sender's display fields.
type MessageDetails struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`

	SenderFirstName string `json:"first_name"`
	SenderLastName  string `json:"last_name"`
	SenderRole      string `json:"role"`
}

// HasBookingAccess reports whether userID is the booking's guest or the host
// of the booked property. The relay and both chat endpoints gate on this.
func (r *ChatRepository) HasBookingAccess(ctx context.Context, bookingID, userID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Joins("JOIN properties p ON p.id = b.property_id").
		Where("b.id = ?", bookingID).
		Where("b.guest_id = ? OR p.host_id = ?", userID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) GetMessageDetails(ctx context.Context, id int64) (*MessageDetails, error) {
	var row MessageDetails
	tx := r.db.WithContext(ctx).
		Table("chat_messages cm").
		Select("cm.id, cm.booking_id, cm.sender_id, cm.receiver_id, cm.message, cm.is_read, cm.created_at, u.first_name AS sender_first_name, u.last_name AS sender_last_name, u.role AS sender_role").
		Joins("JOIN users u ON u.id = cm.sender_id").
		Where("cm.id = ?", id).
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

func (r *ChatRepository) ListByBooking(ctx context.Context, bookingID int64) ([]MessageDetails, error) {
	var rows []MessageDetails
	err := r.db.WithContext(ctx).
		Table("chat_messages cm").
		Select("cm.id, cm.booking_id, cm.sender_id, cm.receiver_id, cm.message, cm.is_read, cm.created_at, u.first_name AS sender_first_name, u.last_name AS sender_last_name, u.role AS sender_role").
		Joins("JOIN users u ON u.id = cm.sender_id").
		Where("cm.booking_id = ?", bookingID).
		Order("cm.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// MarkRead flips the read flag on every message in the booking addressed to
// receiverID. Messages addressed to the other party are untouched.
func (r *ChatRepository) MarkRead(ctx context.Context, bookingID, receiverID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("booking_id = ? AND receiver_id = ?", bookingID, receiverID).
		Update("is_read", true).Error
}
