package domain

import "time"

// MapLocation is a point of interest near a property (beach, restaurant,
// viewpoint, ...). Curated by the host, read by guests and the assistant.
type MapLocation struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property_id" gorm:"index"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Address     string    `json:"address,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmergencyContact struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property_id" gorm:"index"`
	ServiceType string    `json:"service_type"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
