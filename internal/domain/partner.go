package domain

import "time"

// Partner is an external service provider. Its commission policy is either a
// percentage of the order price or a fixed fee; when both are nonzero the
// percentage wins. Read-only from the ledger's perspective.
type Partner struct {
	ID                   int64       `json:"id"`
	Name                 string      `json:"name"`
	ServiceType          ServiceType `json:"service_type"`
	Phone                string      `json:"phone,omitempty"`
	Email                string      `json:"email,omitempty"`
	Description          string      `json:"description,omitempty" gorm:"type:text"`
	CommissionPercentage float64     `json:"commission_percentage"`
	CommissionFixed      float64     `json:"commission_fixed"`
	IsActive             bool        `json:"is_active" gorm:"default:true"`
	CreatedAt            time.Time   `json:"created_at"`
}

type Service struct {
	ID          int64       `json:"id"`
	PartnerID   *int64      `json:"partner_id,omitempty" gorm:"index"`
	Name        string      `json:"name"`
	Type        ServiceType `json:"type"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Price       *float64    `json:"price,omitempty"`
	IsAvailable bool        `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
}
