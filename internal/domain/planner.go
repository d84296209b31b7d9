package domain

import "time"

type SavedLocation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id" gorm:"index"`
	LocationID int64     `json:"location_id"`
	CustomName string    `json:"custom_name,omitempty"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

type Itinerary struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id" gorm:"index"`
	BookingID  *int64    `json:"booking_id,omitempty"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Activities any       `json:"activities,omitempty" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}
