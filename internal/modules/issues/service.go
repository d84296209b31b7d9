package issues

import (
	"context"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

type IssueRepository interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	ListByGuest(ctx context.Context, guestID int64) ([]repository.IssueDetails, error)
}

type Service struct {
	repo IssueRepository
}

func NewService(repo IssueRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ReportIssue(ctx context.Context, i *domain.Issue) (*domain.Issue, error) {
	i.Status = domain.IssueOpen
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, i.ID)
}

func (s *Service) MyIssues(ctx context.Context, guestID int64) ([]repository.IssueDetails, error) {
	return s.repo.ListByGuest(ctx, guestID)
}
