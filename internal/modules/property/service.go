package property

import (
	"context"
	"time"

	"guestnest/internal/domain"
)

type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	ListEquipment(ctx context.Context, propertyID int64) ([]domain.EquipmentInstruction, error)
	ListHouseRules(ctx context.Context, propertyID int64) ([]domain.HouseRule, error)
	ActiveBooking(ctx context.Context, propertyID, guestID int64, now time.Time) (*domain.Booking, error)
}

// PropertyInfo is the property page payload: the property plus everything a
// guest needs on arrival.
type PropertyInfo struct {
	domain.Property
	EquipmentInstructions []domain.EquipmentInstruction `json:"equipment_instructions"`
	HouseRules            []domain.HouseRule            `json:"house_rules"`
}

type Service struct {
	properties PropertyReader
}

func NewService(properties PropertyReader) *Service {
	return &Service{properties: properties}
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*PropertyInfo, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment, err := s.properties.ListEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	rules, err := s.properties.ListHouseRules(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PropertyInfo{
		Property:              *p,
		EquipmentInstructions: equipment,
		HouseRules:            rules,
	}, nil
}

func (s *Service) ActiveBooking(ctx context.Context, propertyID, guestID int64) (*domain.Booking, error) {
	return s.properties.ActiveBooking(ctx, propertyID, guestID, time.Now())
}
