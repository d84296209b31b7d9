package catalog

import (
	"context"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

type ServiceReader interface {
	ListAvailable(ctx context.Context, serviceType string, partnerID *int64) ([]repository.ServiceDetails, error)
	GetDetailsByID(ctx context.Context, id int64) (*repository.ServiceDetails, error)
}

type PartnerReader interface {
	ListActive(ctx context.Context, serviceType string) ([]domain.Partner, error)
}

type Service struct {
	services ServiceReader
	partners PartnerReader
}

func NewService(services ServiceReader, partners PartnerReader) *Service {
	return &Service{
		services: services,
		partners: partners,
	}
}

func (s *Service) ListServices(ctx context.Context, serviceType string, partnerID *int64) ([]repository.ServiceDetails, error) {
	return s.services.ListAvailable(ctx, serviceType, partnerID)
}

func (s *Service) GetService(ctx context.Context, id int64) (*repository.ServiceDetails, error) {
	return s.services.GetDetailsByID(ctx, id)
}

func (s *Service) ListPartners(ctx context.Context, serviceType string) ([]domain.Partner, error) {
	return s.partners.ListActive(ctx, serviceType)
}
