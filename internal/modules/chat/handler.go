package chat

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

// RegisterRoutes registers chat routes under the protected group.
// Base path is /api/chat
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/chat")
	{
		g.POST("", h.SendMessage)
		g.GET("/booking/:bookingId", h.GetMessages)
	}
}

func (h *Handler) SendMessage(c *gin.Context) {
	senderID := c.GetInt64("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrValidation.Error())
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), senderID, req)
	switch {
	case errors.Is(err, ErrAccessDenied):
		// 404, not 403: do not confirm the booking exists.
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrAccessDenied.Error())
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CHAT_ERROR", "Server error sending message")
	default:
		response.Success(c, http.StatusCreated, msg)
	}
}

func (h *Handler) GetMessages(c *gin.Context) {
	requesterID := c.GetInt64("user_id")

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	msgs, err := h.service.GetMessages(c.Request.Context(), requesterID, bookingID)
	switch {
	case errors.Is(err, ErrAccessDenied):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrAccessDenied.Error())
	case err != nil:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CHAT_ERROR", "Server error")
	default:
		response.Success(c, http.StatusOK, gin.H{"messages": msgs})
	}
}
