package assistant

import (
	"errors"
	"net/http"

	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message    string `json:"message" binding:"required"`
	PropertyID *int64 `json:"property_id"`
}

type ItineraryRequest struct {
	PropertyID  int64  `json:"property_id" binding:"required,gt=0"`
	Date        string `json:"date" binding:"required"`
	Preferences string `json:"preferences"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers assistant routes.
// Base path is /api/ai-assistant
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/ai-assistant")
	{
		g.POST("/chat", h.Chat)
		g.POST("/generate-itinerary", h.GenerateItinerary)
	}
}

func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	result, err := h.service.Chat(c.Request.Context(), req.Message, req.PropertyID)
	switch {
	case errors.Is(err, ErrUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "AI Assistant is not available")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "ASSISTANT_ERROR", "Error communicating with AI assistant")
	default:
		response.Success(c, http.StatusOK, result)
	}
}

func (h *Handler) GenerateItinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Property ID and date are required")
		return
	}

	result, err := h.service.GenerateItinerary(c.Request.Context(), req.PropertyID, req.Date, req.Preferences)
	switch {
	case errors.Is(err, ErrUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "AI Assistant is not available")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "ASSISTANT_ERROR", "Error generating itinerary")
	default:
		response.Success(c, http.StatusOK, result)
	}
}
