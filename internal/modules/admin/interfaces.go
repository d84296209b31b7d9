package admin

import (
	"context"
	"time"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

// OrderReporter is the read side of the order ledger used by the dashboard.
type OrderReporter interface {
	List(ctx context.Context, f repository.OrderFilter) ([]repository.OrderDetails, error)
	Export(ctx context.Context, f repository.OrderFilter) ([]repository.ExportRow, error)
	SummarizeCommissions(ctx context.Context, partnerID *int64, start, end *time.Time) ([]repository.CommissionRow, error)
	ListCompletedBetween(ctx context.Context, partnerID *int64, start, end time.Time) ([]repository.CompletedOrderRow, error)
}

type UserReader interface {
	List(ctx context.Context, role string) ([]domain.User, error)
	CountByRole(ctx context.Context) ([]repository.RoleCount, error)
	Count(ctx context.Context) (int64, error)
}
