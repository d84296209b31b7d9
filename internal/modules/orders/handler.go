package orders

import (
	"errors"
	"net/http"
	"strconv"

	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers order routes under the protected group.
// Base path is /api/orders
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/orders")
	{
		g.POST("", h.CreateOrder)
		g.GET("/my-orders", h.MyOrders)
		g.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Property ID and service type are required")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), guestID, req)
	switch {
	case errors.Is(err, ErrInvalidServiceType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidReference):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "ORDER_ERROR", "Server error creating order")
	default:
		response.Success(c, http.StatusCreated, order)
	}
}

func (h *Handler) MyOrders(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	orders, err := h.service.MyOrders(c.Request.Context(), guestID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	status, err := h.service.UpdateStatus(c.Request.Context(), orderID, req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "ORDER_ERROR", "Server error")
	default:
		response.Success(c, http.StatusOK, gin.H{"message": "Order status updated", "status": status})
	}
}
