package domain

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the reservation context that scopes chat access and guest
// activity. Managed elsewhere; this service only reads it.
type Booking struct {
	ID           int64         `json:"id"`
	PropertyID   int64         `json:"property_id" gorm:"index"`
	GuestID      int64         `json:"guest_id" gorm:"index"`
	CheckInDate  time.Time     `json:"check_in_date"`
	CheckOutDate time.Time     `json:"check_out_date"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
