package admin

import (
	"time"

	"guestnest/internal/domain"
	"guestnest/internal/repository"
)

// CommissionSummary pairs the grouped rows with totals computed from those
// same rows, so the two agree by construction.
type CommissionSummary struct {
	Summary []repository.CommissionRow `json:"summary"`
	Totals  CommissionTotals           `json:"totals"`
}

type CommissionTotals struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
}

// MonthlyCommissionRow is one partner's completed-order aggregate for one
// calendar month.
type MonthlyCommissionRow struct {
	PartnerID   int64   `json:"partner_id"`
	PartnerName string  `json:"partner_name"`
	Month       int     `json:"month"`
	OrderCount  int64   `json:"order_count"`
	Revenue     float64 `json:"revenue"`
	Commission  float64 `json:"commission"`
}

type OrdersExport struct {
	Data         []repository.ExportRow `json:"data"`
	ExportDate   time.Time              `json:"export_date"`
	TotalRecords int                    `json:"total_records"`
}

type UserList struct {
	Users      []domain.User  `json:"users"`
	Statistics UserStatistics `json:"statistics"`
}

// UserStatistics is always computed over the full user table, independent of
// any role filter applied to the listing.
type UserStatistics struct {
	Total   int64 `json:"total"`
	Admin   int64 `json:"admin"`
	Host    int64 `json:"host"`
	Guest   int64 `json:"guest"`
	Partner int64 `json:"partner"`
}
