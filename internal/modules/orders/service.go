package orders

import (
	"context"
	"errors"
	"time"

	"guestnest/internal/domain"
	"guestnest/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	orders   OrderRepository
	partners PartnerReader
	notifs   NotificationSender
}

func NewService(orders OrderRepository, partners PartnerReader, notifs NotificationSender) *Service {
	return &Service{
		orders:   orders,
		partners: partners,
		notifs:   notifs,
	}
}

// CreateOrder validates the request, snapshots the partner's commission terms
// and persists the order with status pending. The returned row carries the
// joined display fields for immediate UI consumption.
//
// Commission resolution: price present and percentage > 0 takes the
// percentage of price; otherwise a nonzero fixed fee applies regardless of
// price; otherwise zero. Without a partner both commission fields stay zero.
// The snapshot is never recomputed, even if the partner's rate changes later.
func (s *Service) CreateOrder(ctx context.Context, guestID int64, req CreateOrderRequest) (*repository.OrderDetails, error) {
	serviceType := domain.ServiceType(req.ServiceType)
	if !domain.ValidServiceType(serviceType) {
		return nil, ErrInvalidServiceType
	}

	var commissionPct, commissionAmount float64
	if req.PartnerID != nil {
		partner, err := s.partners.GetByID(ctx, *req.PartnerID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrInvalidReference
		case err != nil:
			return nil, err
		}

		commissionPct = partner.CommissionPercentage
		switch {
		case req.Price != nil && commissionPct > 0:
			commissionAmount = *req.Price * commissionPct / 100
		case partner.CommissionFixed > 0:
			commissionAmount = partner.CommissionFixed
		}
	}

	o := &domain.Order{
		GuestID:              guestID,
		PropertyID:           req.PropertyID,
		ServiceID:            req.ServiceID,
		PartnerID:            req.PartnerID,
		ServiceType:          serviceType,
		Price:                req.Price,
		CommissionPercentage: commissionPct,
		CommissionAmount:     commissionAmount,
		OrderDetails:         req.OrderDetails,
		Status:               domain.OrderPending,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyOrderCreated(ctx, guestID, o.ID, serviceType)
	}

	return s.orders.GetDetailsByID(ctx, o.ID)
}

func (s *Service) MyOrders(ctx context.Context, guestID int64) ([]repository.OrderDetails, error) {
	return s.orders.ListByGuest(ctx, guestID)
}

// UpdateStatus moves an order to any of the known statuses. Transitions are
// not restricted: the admin dashboard depends on being able to correct a
// mis-set status in either direction. Completing stamps completed_at; moving
// to any other status clears it, which also removes the order from
// commission reports.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status string) (domain.OrderStatus, error) {
	newStatus := domain.OrderStatus(status)
	if !domain.ValidOrderStatus(newStatus) {
		return "", ErrInvalidStatus
	}

	var completedAt *time.Time
	if newStatus == domain.OrderCompleted {
		now := time.Now()
		completedAt = &now
	}

	err := s.orders.UpdateStatus(ctx, orderID, newStatus, completedAt)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return newStatus, nil
}
