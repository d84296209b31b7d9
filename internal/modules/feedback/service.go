package feedback

import (
	"context"
	"errors"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	GetByID(ctx context.Context, id int64) (*domain.Feedback, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]repository.FeedbackDetails, error)
}

type Service struct {
	repo FeedbackRepository
}

func NewService(repo FeedbackRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if f.Rating < 1 || f.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, f.ID)
}

func (s *Service) PropertyFeedback(ctx context.Context, propertyID int64) ([]repository.FeedbackDetails, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}
