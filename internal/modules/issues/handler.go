package issues

import (
	"net/http"

	"guestnest/internal/domain"
	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportIssueRequest struct {
	BookingID   int64  `json:"booking_id" binding:"required,gt=0"`
	PropertyID  int64  `json:"property_id" binding:"required,gt=0"`
	IssueType   string `json:"issue_type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Images      any    `json:"images"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers issue routes.
// Base path is /api/issues
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/issues")
	{
		g.POST("", h.ReportIssue)
		g.GET("/my-issues", h.MyIssues)
	}
}

func (h *Handler) ReportIssue(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking, property, issue type, title and description are required")
		return
	}

	issue, err := h.service.ReportIssue(c.Request.Context(), &domain.Issue{
		BookingID:   req.BookingID,
		PropertyID:  req.PropertyID,
		GuestID:     guestID,
		IssueType:   req.IssueType,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "Failed to report issue")
		return
	}

	response.Success(c, http.StatusCreated, issue)
}

func (h *Handler) MyIssues(c *gin.Context) {
	guestID := c.GetInt64("user_id")

	items, err := h.service.MyIssues(c.Request.Context(), guestID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch issues")
		return
	}

	response.Success(c, http.StatusOK, items)
}
