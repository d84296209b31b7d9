package notification

import (
	"net/http"
	"strconv"

	"guestnest/internal/domain"
	"guestnest/internal/pkg/response"
	"guestnest/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CreateNotificationRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Type    string `json:"type" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers notification routes.
// Base path is /api/notifications
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.POST("", h.Create)
		g.GET("/my-notifications", h.MyNotifications)
		g.PATCH("/:id/read", h.MarkRead)
		g.PATCH("/read-all", h.MarkAllRead)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	n := &domain.Notification{
		UserID:  req.UserID,
		Type:    domain.NotificationType(req.Type),
		Title:   req.Title,
		Message: req.Message,
	}
	if err := h.service.Create(c.Request.Context(), n); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "Failed to create notification")
		return
	}

	response.Success(c, http.StatusCreated, n)
}

func (h *Handler) MyNotifications(c *gin.Context) {
	userID := c.GetInt64("user_id")
	unreadOnly := c.Query("unread_only") == "true"

	items, err := h.service.MyNotifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch notifications")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) MarkRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", "Failed to mark notification as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", "Failed to mark notifications as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
