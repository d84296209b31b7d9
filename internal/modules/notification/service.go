package notification

import (
	"context"
	"fmt"

	"guestnest/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, n *domain.Notification) error {
	return s.repo.Create(ctx, n)
}

func (s *Service) MyNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// NotifyOrderCreated records an order_created notification for the guest.
func (s *Service) NotifyOrderCreated(ctx context.Context, guestID, orderID int64, serviceType domain.ServiceType) error {
	return s.repo.Create(ctx, &domain.Notification{
		UserID:  guestID,
		Type:    domain.NotifOrderCreated,
		Title:   "Order created",
		Message: fmt.Sprintf("Your %s order #%d has been created", serviceType, orderID),
	})
}
