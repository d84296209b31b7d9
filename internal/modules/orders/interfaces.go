package orders

import (
	"context"
	"time"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

// OrderRepository defines the persistence operations the ledger needs.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetDetailsByID(ctx context.Context, id int64) (*repository.OrderDetails, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByGuest(ctx context.Context, guestID int64) ([]repository.OrderDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, completedAt *time.Time) error
}

// PartnerReader resolves commission terms at order-creation time.
type PartnerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)
}

// NotificationSender records the order-created event for the guest.
// Optional; a nil sender disables notifications.
type NotificationSender interface {
	NotifyOrderCreated(ctx context.Context, guestID, orderID int64, serviceType domain.ServiceType) error
}
