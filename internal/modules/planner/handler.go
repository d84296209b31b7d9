package planner

import (
	"errors"
	"net/http"
	"strconv"

	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SaveLocationRequest struct {
	LocationID int64  `json:"location_id" binding:"required,gt=0"`
	CustomName string `json:"custom_name"`
	Notes      string `json:"notes"`
}

type ItineraryRequest struct {
	BookingID  *int64 `json:"booking_id"`
	Title      string `json:"title" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Activities any    `json:"activities"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers trip planner routes.
// Base path is /api/trip-planner
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/trip-planner")
	{
		g.POST("/save-location", h.SaveLocation)
		g.GET("/saved-locations", h.SavedLocations)
		g.DELETE("/saved-locations/:id", h.DeleteSavedLocation)
		g.POST("/itinerary", h.CreateItinerary)
		g.GET("/itineraries", h.MyItineraries)
		g.PUT("/itinerary/:id", h.UpdateItinerary)
		g.DELETE("/itinerary/:id", h.DeleteItinerary)
	}
}

func (h *Handler) SaveLocation(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var req SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Location ID is required")
		return
	}

	saved, err := h.service.SaveLocation(c.Request.Context(), guestID, req.LocationID, req.CustomName, req.Notes)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "SAVE_ERROR", "Failed to save location")
		return
	}

	response.Success(c, http.StatusCreated, saved)
}

func (h *Handler) SavedLocations(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	items, err := h.service.SavedLocations(c.Request.Context(), guestID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch saved locations")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) DeleteSavedLocation(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid location ID")
		return
	}

	if err := h.service.DeleteSavedLocation(c.Request.Context(), id, guestID); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "DELETE_ERROR", "Failed to remove saved location")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Location removed"})
}

func (h *Handler) CreateItinerary(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and date are required")
		return
	}

	it, err := h.service.CreateItinerary(c.Request.Context(), guestID, req.BookingID, req.Title, req.Date, req.Activities)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "Failed to create itinerary")
		return
	}

	response.Success(c, http.StatusCreated, it)
}

func (h *Handler) MyItineraries(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var bookingID *int64
	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
			return
		}
		bookingID = &id
	}

	items, err := h.service.MyItineraries(c.Request.Context(), guestID, bookingID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch itineraries")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) UpdateItinerary(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid itinerary ID")
		return
	}

	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and date are required")
		return
	}

	it, err := h.service.UpdateItinerary(c.Request.Context(), id, guestID, req.Title, req.Date, req.Activities)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Itinerary not found")
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", "Failed to update itinerary")
	default:
		response.Success(c, http.StatusOK, it)
	}
}

func (h *Handler) DeleteItinerary(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid itinerary ID")
		return
	}

	if err := h.service.DeleteItinerary(c.Request.Context(), id, guestID); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "DELETE_ERROR", "Failed to delete itinerary")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Itinerary deleted"})
}
