package planner

import (
	"context"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

type PlannerRepository interface {
	SaveLocation(ctx context.Context, s *domain.SavedLocation) error
	GetSavedDetails(ctx context.Context, id int64) (*repository.SavedLocationDetails, error)
	ListSaved(ctx context.Context, guestID int64) ([]repository.SavedLocationDetails, error)
	DeleteSaved(ctx context.Context, id, guestID int64) error
	CreateItinerary(ctx context.Context, it *domain.Itinerary) error
	GetItinerary(ctx context.Context, id int64) (*domain.Itinerary, error)
	ListItineraries(ctx context.Context, guestID int64, bookingID *int64) ([]domain.Itinerary, error)
	UpdateItinerary(ctx context.Context, id, guestID int64, title, date string, activities any) (*domain.Itinerary, error)
	DeleteItinerary(ctx context.Context, id, guestID int64) error
}

type Service struct {
	repo PlannerRepository
}

func NewService(repo PlannerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SaveLocation(ctx context.Context, guestID, locationID int64, customName, notes string) (*repository.SavedLocationDetails, error) {
	saved := &domain.SavedLocation{
		GuestID:    guestID,
		LocationID: locationID,
		CustomName: customName,
		Notes:      notes,
	}
	if err := s.repo.SaveLocation(ctx, saved); err != nil {
		return nil, err
	}
	return s.repo.GetSavedDetails(ctx, saved.ID)
}

func (s *Service) SavedLocations(ctx context.Context, guestID int64) ([]repository.SavedLocationDetails, error) {
	return s.repo.ListSaved(ctx, guestID)
}

func (s *Service) DeleteSavedLocation(ctx context.Context, id, guestID int64) error {
	return s.repo.DeleteSaved(ctx, id, guestID)
}

func (s *Service) CreateItinerary(ctx context.Context, guestID int64, bookingID *int64, title, date string, activities any) (*domain.Itinerary, error) {
	it := &domain.Itinerary{
		GuestID:    guestID,
		BookingID:  bookingID,
		Title:      title,
		Date:       date,
		Activities: activities,
	}
	if err := s.repo.CreateItinerary(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) MyItineraries(ctx context.Context, guestID int64, bookingID *int64) ([]domain.Itinerary, error) {
	return s.repo.ListItineraries(ctx, guestID, bookingID)
}

func (s *Service) UpdateItinerary(ctx context.Context, id, guestID int64, title, date string, activities any) (*domain.Itinerary, error) {
	return s.repo.UpdateItinerary(ctx, id, guestID, title, date, activities)
}

func (s *Service) DeleteItinerary(ctx context.Context, id, guestID int64) error {
	return s.repo.DeleteItinerary(ctx, id, guestID)
}
