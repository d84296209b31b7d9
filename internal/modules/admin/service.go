package admin

import (
	"context"
	"sort"
	"time"

	"guestnest/internal/repository"
)

type Service struct {
	orders OrderReporter
	users  UserReader
}

func NewService(orders OrderReporter, users UserReader) *Service {
	return &Service{
		orders: orders,
		users:  users,
	}
}

func (s *Service) ListOrders(ctx context.Context, f repository.OrderFilter) ([]repository.OrderDetails, error) {
	return s.orders.List(ctx, f)
}

// SummarizeCommissions returns per-(partner, service type) aggregates over
// completed orders plus totals. Totals are summed from the returned groups
// here, not by a second database aggregate, so the two cannot drift apart.
func (s *Service) SummarizeCommissions(ctx context.Context, partnerID *int64, start, end *time.Time) (*CommissionSummary, error) {
	rows, err := s.orders.SummarizeCommissions(ctx, partnerID, start, end)
	if err != nil {
		return nil, err
	}

	out := &CommissionSummary{Summary: rows}
	for _, row := range rows {
		out.Totals.TotalOrders += row.TotalOrders
		out.Totals.TotalRevenue += row.TotalRevenue
		out.Totals.TotalCommission += row.TotalCommission
	}
	return out, nil
}

// MonthlyCommissions aggregates completed orders per partner per month of a
// year. Grouping happens here over a plain row scan to stay portable across
// SQL dialects (no MONTH()/strftime branching).
func (s *Service) MonthlyCommissions(ctx context.Context, partnerID *int64, year int) ([]MonthlyCommissionRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	rows, err := s.orders.ListCompletedBetween(ctx, partnerID, start, end)
	if err != nil {
		return nil, err
	}

	type key struct {
		partnerID int64
		month     int
	}
	groups := make(map[key]*MonthlyCommissionRow)
	for _, row := range rows {
		if row.CompletedAt == nil {
			continue
		}
		k := key{partnerID: row.PartnerID, month: int(row.CompletedAt.Month())}
		g, ok := groups[k]
		if !ok {
			g = &MonthlyCommissionRow{
				PartnerID:   row.PartnerID,
				PartnerName: row.PartnerName,
				Month:       k.month,
			}
			groups[k] = g
		}
		g.OrderCount++
		if row.Price != nil {
			g.Revenue += *row.Price
		}
		g.Commission += row.CommissionAmount
	}

	out := make([]MonthlyCommissionRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].PartnerName < out[j].PartnerName
	})
	return out, nil
}

func (s *Service) ExportOrders(ctx context.Context, f repository.OrderFilter) (*OrdersExport, error) {
	rows, err := s.orders.Export(ctx, f)
	if err != nil {
		return nil, err
	}
	return &OrdersExport{
		Data:         rows,
		ExportDate:   time.Now().UTC(),
		TotalRecords: len(rows),
	}, nil
}

func (s *Service) ListUsers(ctx context.Context, role string) (*UserList, error) {
	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	stats := UserStatistics{Total: total}
	for _, rc := range counts {
		switch rc.Role {
		case "admin":
			stats.Admin = rc.Count
		case "host":
			stats.Host = rc.Count
		case "guest":
			stats.Guest = rc.Count
		case "partner":
			stats.Partner = rc.Count
		}
	}

	return &UserList{Users: users, Statistics: stats}, nil
}
