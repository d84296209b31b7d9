package domain

import "time"

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

type Issue struct {
	ID          int64       `json:"id"`
	BookingID   int64       `json:"booking_id"`
	PropertyID  int64       `json:"property_id" gorm:"index"`
	GuestID     int64       `json:"guest_id" gorm:"index"`
	IssueType   string      `json:"issue_type"`
	Title       string      `json:"title"`
	Description string      `json:"description" gorm:"type:text"`
	Images      any         `json:"images,omitempty" gorm:"serializer:json"`
	Status      IssueStatus `json:"status" gorm:"default:'open'"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Feedback struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PropertyID int64     `json:"property_id" gorm:"index"`
	GuestID    int64     `json:"guest_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "guest_feedback"
}
