package orders

type CreateOrderRequest struct {
	PropertyID   int64    `json:"property_id" binding:"required"`
	ServiceType  string   `json:"service_type" binding:"required"`
	ServiceID    *int64   `json:"service_id"`
	PartnerID    *int64   `json:"partner_id"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	OrderDetails any      `json:"order_details"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
