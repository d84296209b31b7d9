package weather

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

// RegisterRoutes registers weather routes.
// Base path is /api/weather
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather/:propertyId", h.GetWeather)
}

func (h *Handler) GetWeather(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	report, err := h.service.GetWeather(c.Request.Context(), propertyID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrNoCoordinates):
		response.Error(c, http.StatusBadRequest, "NO_COORDINATES", "Property coordinates not set")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "WEATHER_ERROR", "Error fetching weather data")
	default:
		response.Success(c, http.StatusOK, report)
	}
}
