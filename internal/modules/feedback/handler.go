package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"guestnest/internal/domain"
	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubmitFeedbackRequest struct {
	BookingID  int64  `json:"booking_id" binding:"required,gt=0"`
	PropertyID int64  `json:"property_id" binding:"required,gt=0"`
	Rating     int    `json:"rating" binding:"required"`
	Comments   string `json:"comments"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers feedback routes.
// Base path is /api/feedback
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/feedback")
	{
		g.POST("", h.Submit)
		g.GET("/property/:propertyId", h.PropertyFeedback)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking, property and rating are required")
		return
	}

	fb, err := h.service.Submit(c.Request.Context(), &domain.Feedback{
		BookingID:  req.BookingID,
		PropertyID: req.PropertyID,
		GuestID:    guestID,
		Rating:     req.Rating,
		Comments:   req.Comments,
	})
	switch {
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrInvalidRating.Error())
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "Failed to submit feedback")
	default:
		response.Success(c, http.StatusCreated, fb)
	}
}

func (h *Handler) PropertyFeedback(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	items, err := h.service.PropertyFeedback(c.Request.Context(), propertyID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch feedback")
		return
	}

	response.Success(c, http.StatusOK, items)
}
