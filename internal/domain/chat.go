package domain

import "time"

// ChatMessage is one line of booking-scoped chat. Immutable once written
// except for IsRead, which the receiving party flips. The persisted log is
// the source of truth; the websocket relay only accelerates delivery.
type ChatMessage struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id" gorm:"not null;index"`
	SenderID   int64     `json:"sender_id" gorm:"not null"`
	ReceiverID int64     `json:"receiver_id" gorm:"not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
