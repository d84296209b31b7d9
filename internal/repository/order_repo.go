package repository

import (
	"context"
	"encoding/json"
	"time"

	"guestnest/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderFilter narrows order queries; nil/empty fields are skipped and the
// rest are AND-combined. EndDate is exclusive.
type OrderFilter struct {
	PartnerID   *int64
	ServiceType string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

// OrderDetails is an order row enriched with joined display names for
// immediate UI consumption.
type OrderDetails struct {
	ID                   int64           `json:"id"`
	GuestID              int64           `json:"guest_id"`
	PropertyID           int64           `json:"property_id"`
	ServiceID            *int64          `json:"service_id,omitempty"`
	PartnerID            *int64          `json:"partner_id,omitempty"`
	ServiceType          string          `json:"service_type"`
	Price                *float64        `json:"price,omitempty"`
	CommissionPercentage float64         `json:"commission_percentage"`
	CommissionAmount     float64         `json:"commission_amount"`
	OrderDetails         json.RawMessage `json:"order_details,omitempty"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`

	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
	GuestEmail     string `json:"guest_email"`
	PropertyName   string `json:"property_name"`
	PartnerName    string `json:"partner_name,omitempty"`
	ServiceName    string `json:"service_name,omitempty"`
}

// CommissionRow is one (partner, service type) group of completed orders.
type CommissionRow struct {
	PartnerID               int64   `json:"partner_id"`
	PartnerName             string  `json:"partner_name"`
	ServiceType             string  `json:"service_type"`
	TotalOrders             int64   `json:"total_orders"`
	TotalRevenue            float64 `json:"total_revenue"`
	TotalCommission         float64 `json:"total_commission"`
	AvgCommissionPercentage float64 `json:"avg_commission_percentage"`
}

// CompletedOrderRow is the raw material for the monthly breakdown, which is
// aggregated caller-side to stay portable across SQL dialects.
type CompletedOrderRow struct {
	PartnerID        int64      `json:"partner_id"`
	PartnerName      string     `json:"partner_name"`
	CompletedAt      *time.Time `json:"completed_at"`
	Price            *float64   `json:"price"`
	CommissionAmount float64    `json:"commission_amount"`
}

// ExportRow is the flat projection served by the admin export endpoint.
type ExportRow struct {
	ID                   int64      `json:"id"`
	OrderDate            time.Time  `json:"order_date"`
	GuestFirstName       string     `json:"guest_first_name"`
	GuestLastName        string     `json:"guest_last_name"`
	GuestEmail           string     `json:"guest_email"`
	PropertyName         string     `json:"property_name"`
	PartnerName          string     `json:"partner_name,omitempty"`
	ServiceName          string     `json:"service_name,omitempty"`
	ServiceType          string     `json:"service_type"`
	Status               string     `json:"status"`
	Price                *float64   `json:"price,omitempty"`
	CommissionPercentage float64    `json:"commission_percentage"`
	CommissionAmount     float64    `json:"commission_amount"`
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

const orderDetailsSelect = `o.id, o.guest_id, o.property_id, o.service_id, o.partner_id,
o.service_type, o.price, o.commission_percentage, o.commission_amount,
o.order_details, o.status, o.created_at, o.completed_at,
u.first_name AS guest_first_name, u.last_name AS guest_last_name, u.email AS guest_email,
p.name AS property_name, pt.name AS partner_name, s.name AS service_name`

func (r *OrderRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders o").
		Select(orderDetailsSelect).
		Joins("LEFT JOIN users u ON u.id = o.guest_id").
		Joins("LEFT JOIN properties p ON p.id = o.property_id").
		Joins("LEFT JOIN partners pt ON pt.id = o.partner_id").
		Joins("LEFT JOIN services s ON s.id = o.service_id")
}

func (r *OrderRepository) GetDetailsByID(ctx context.Context, id int64) (*OrderDetails, error) {
	var row OrderDetails
	tx := r.detailsQuery(ctx).Where("o.id = ?", id).Limit(1).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByGuest(ctx context.Context, guestID int64) ([]OrderDetails, error) {
	var rows []OrderDetails
	err := r.detailsQuery(ctx).
		Where("o.guest_id = ?", guestID).
		Order("o.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) List(ctx context.Context, f OrderFilter) ([]OrderDetails, error) {
	var rows []OrderDetails
	err := applyOrderFilter(r.detailsQuery(ctx), f).
		Order("o.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) Export(ctx context.Context, f OrderFilter) ([]ExportRow, error) {
	q := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.created_at AS order_date,
u.first_name AS guest_first_name, u.last_name AS guest_last_name, u.email AS guest_email,
p.name AS property_name, pt.name AS partner_name, s.name AS service_name,
o.service_type, o.status, o.price, o.commission_percentage, o.commission_amount`).
		Joins("LEFT JOIN users u ON u.id = o.guest_id").
		Joins("LEFT JOIN properties p ON p.id = o.property_id").
		Joins("LEFT JOIN partners pt ON pt.id = o.partner_id").
		Joins("LEFT JOIN services s ON s.id = o.service_id")

	var rows []ExportRow
	err := applyOrderFilter(q, f).
		Order("o.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus sets the order status and completion time in one write.
// completedAt must be nil for every status except completed: transitioning
// away from completed deliberately clears a previously stamped time.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, completedAt *time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"completed_at": completedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SummarizeCommissions groups completed orders by (partner, service type).
// Date filters apply to completed_at. Totals across groups are computed by
// the caller, not here.
func (r *OrderRepository) SummarizeCommissions(ctx context.Context, partnerID *int64, start, end *time.Time) ([]CommissionRow, error) {
	q := r.db.WithContext(ctx).
		Table("orders o").
		Select(`pt.id AS partner_id, pt.name AS partner_name, o.service_type,
COUNT(o.id) AS total_orders,
COALESCE(SUM(o.price), 0) AS total_revenue,
COALESCE(SUM(o.commission_amount), 0) AS total_commission,
COALESCE(AVG(o.commission_percentage), 0) AS avg_commission_percentage`).
		Joins("JOIN partners pt ON pt.id = o.partner_id").
		Where("o.status = ?", domain.OrderCompleted)

	if partnerID != nil {
		q = q.Where("pt.id = ?", *partnerID)
	}
	if start != nil {
		q = q.Where("o.completed_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("o.completed_at < ?", *end)
	}

	var rows []CommissionRow
	err := q.Group("pt.id, pt.name, o.service_type").
		Order("total_commission DESC").
		Scan(&rows).Error
	return rows, err
}

// ListCompletedBetween returns completed partner orders in [start, end) for
// the caller-side monthly aggregation.
func (r *OrderRepository) ListCompletedBetween(ctx context.Context, partnerID *int64, start, end time.Time) ([]CompletedOrderRow, error) {
	q := r.db.WithContext(ctx).
		Table("orders o").
		Select("pt.id AS partner_id, pt.name AS partner_name, o.completed_at, o.price, o.commission_amount").
		Joins("JOIN partners pt ON pt.id = o.partner_id").
		Where("o.status = ?", domain.OrderCompleted).
		Where("o.completed_at >= ? AND o.completed_at < ?", start, end)

	if partnerID != nil {
		q = q.Where("pt.id = ?", *partnerID)
	}

	var rows []CompletedOrderRow
	err := q.Order("o.completed_at ASC").Scan(&rows).Error
	return rows, err
}

func applyOrderFilter(q *gorm.DB, f OrderFilter) *gorm.DB {
	if f.PartnerID != nil {
		q = q.Where("o.partner_id = ?", *f.PartnerID)
	}
	if f.ServiceType != "" {
		q = q.Where("o.service_type = ?", f.ServiceType)
	}
	if f.Status != "" {
		q = q.Where("o.status = ?", f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("o.created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("o.created_at < ?", *f.EndDate)
	}
	return q
}
