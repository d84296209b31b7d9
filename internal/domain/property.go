package domain

import "time"

type Property struct {
	ID          int64     `json:"id"`
	HostID      int64     `json:"host_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EquipmentInstruction explains how to operate one appliance at a property.
type EquipmentInstruction struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id" gorm:"index"`
	EquipmentName string    `json:"equipment_name"`
	Instructions  string    `json:"instructions" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

type HouseRule struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id" gorm:"index"`
	RuleText   string    `json:"rule_text" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
