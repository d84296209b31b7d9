package property

import (
	"errors"
	"net/http"
	"strconv"

	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers property info routes.
// Base path is /api/properties
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/properties")
	{
		g.GET("/:id", h.GetProperty)
		g.GET("/:id/active-booking", h.ActiveBooking)
	}
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	info, err := h.service.GetProperty(c.Request.Context(), id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
	default:
		response.Success(c, http.StatusOK, info)
	}
}

func (h *Handler) ActiveBooking(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	booking, err := h.service.ActiveBooking(c.Request.Context(), propertyID, guestID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No active booking found")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
	default:
		response.Success(c, http.StatusOK, booking)
	}
}
