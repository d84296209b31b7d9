package places

import (
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

// RegisterRoutes registers map routes.
// Base path is /api/map
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/map")
	{
		g.GET("/locations/:propertyId", h.Locations)
		g.GET("/emergency/:propertyId", h.EmergencyContacts)
	}
}

func (h *Handler) Locations(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	locations, err := h.service.Locations(c.Request.Context(), propertyID, c.Query("type"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch locations")
		return
	}

	response.Success(c, http.StatusOK, locations)
}

func (h *Handler) EmergencyContacts(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	contacts, err := h.service.EmergencyContacts(c.Request.Context(), propertyID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch emergency contacts")
		return
	}

	response.Success(c, http.StatusOK, contacts)
}
