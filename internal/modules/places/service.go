package places

import (
	"context"

	"guestnest/internal/domain"
)

type PlacesRepository interface {
	ListLocations(ctx context.Context, propertyID int64, locType string) ([]domain.MapLocation, error)
	ListEmergencyContacts(ctx context.Context, propertyID int64) ([]domain.EmergencyContact, error)
}

type Service struct {
	repo PlacesRepository
}

func NewService(repo PlacesRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Locations(ctx context.Context, propertyID int64, locType string) ([]domain.MapLocation, error) {
	return s.repo.ListLocations(ctx, propertyID, locType)
}

func (s *Service) EmergencyContacts(ctx context.Context, propertyID int64) ([]domain.EmergencyContact, error) {
	return s.repo.ListEmergencyContacts(ctx, propertyID)
}
