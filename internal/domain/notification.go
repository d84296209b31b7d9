package domain

import "time"

type NotificationType string

const (
	NotifOrderCreated   NotificationType = "order_created"
	NotifOrderUpdated   NotificationType = "order_updated"
	NotifNewMessage     NotificationType = "new_message"
	NotifIssueReported  NotificationType = "issue_reported"
	NotifBookingEnding  NotificationType = "booking_ending"
	NotifSystemAnnounce NotificationType = "system"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty" gorm:"type:text"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}
