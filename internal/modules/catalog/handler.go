package catalog

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

// RegisterRoutes registers the service/partner catalog.
// Base path is /api/services
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/services")
	{
		g.GET("", h.ListServices)
		g.GET("/partners", h.ListPartners)
		g.GET("/:id", h.GetService)
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	var partnerID *int64
	if v := c.Query("partner_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "partner_id must be an integer")
			return
		}
		partnerID = &id
	}

	services, err := h.service.ListServices(c.Request.Context(), c.Query("type"), partnerID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.service.ListPartners(c.Request.Context(), c.Query("service_type"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"partners": partners})
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
	default:
		response.Success(c, http.StatusOK, svc)
	}
}
