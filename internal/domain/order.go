package domain

import "time"

type ServiceType string

const (
	ServiceFoodDelivery ServiceType = "food_delivery"
	ServiceTaxi         ServiceType = "taxi"
	ServiceExcursion    ServiceType = "excursion"
	ServiceCleaning     ServiceType = "cleaning"
)

// ValidServiceType reports whether t is one of the known service kinds.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceFoodDelivery, ServiceTaxi, ServiceExcursion, ServiceCleaning:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is one guest service request. CommissionPercentage and
// CommissionAmount are snapshotted from the partner's terms when the order is
// created and never recomputed, even if the partner's rate changes later.
type Order struct {
	ID                   int64       `json:"id"`
	GuestID              int64       `json:"guest_id" gorm:"index"`
	PropertyID           int64       `json:"property_id" gorm:"index"`
	ServiceID            *int64      `json:"service_id,omitempty"`
	PartnerID            *int64      `json:"partner_id,omitempty" gorm:"index"`
	ServiceType          ServiceType `json:"service_type"`
	Price                *float64    `json:"price,omitempty"`
	CommissionPercentage float64     `json:"commission_percentage"`
	CommissionAmount     float64     `json:"commission_amount"`
	OrderDetails         any         `json:"order_details,omitempty" gorm:"serializer:json"`
	Status               OrderStatus `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	CompletedAt          *time.Time  `json:"completed_at,omitempty"`
}
