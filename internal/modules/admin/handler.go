package admin

import (
	"net/http"
	"strconv"
	"time"

	"guestnest/internal/pkg/response"
	"guestnest/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes. The group is expected to be
// guarded by the admin/host role middleware; /users additionally requires
// admin and is guarded in main.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.ListOrders)
	rg.GET("/orders/export", h.ExportOrders)
	rg.GET("/commissions", h.Commissions)
	rg.GET("/commissions/monthly", h.MonthlyCommissions)
}

// RegisterUserRoutes registers the admin-only user listing.
func (h *Handler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
}

func (h *Handler) ListOrders(c *gin.Context) {
	f, ok := parseOrderFilter(c)
	if !ok {
		return
	}

	rows, err := h.service.ListOrders(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": rows})
}

func (h *Handler) Commissions(c *gin.Context) {
	partnerID, ok := parseOptionalID(c, "partner_id")
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.service.SummarizeCommissions(c.Request.Context(), partnerID, start, end)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) MonthlyCommissions(c *gin.Context) {
	partnerID, ok := parseOptionalID(c, "partner_id")
	if !ok {
		return
	}

	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be an integer")
			return
		}
		year = parsed
	}

	rows, err := h.service.MonthlyCommissions(c.Request.Context(), partnerID, year)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"monthly": rows})
}

func (h *Handler) ExportOrders(c *gin.Context) {
	f, ok := parseOrderFilter(c)
	if !ok {
		return
	}

	export, err := h.service.ExportOrders(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "EXPORT_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, export)
}

func (h *Handler) ListUsers(c *gin.Context) {
	out, err := h.service.ListUsers(c.Request.Context(), c.Query("role"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Server error")
		return
	}

	response.Success(c, http.StatusOK, out)
}

func parseOrderFilter(c *gin.Context) (repository.OrderFilter, bool) {
	var f repository.OrderFilter

	partnerID, ok := parseOptionalID(c, "partner_id")
	if !ok {
		return f, false
	}
	f.PartnerID = partnerID
	f.ServiceType = c.Query("service_type")
	f.Status = c.Query("status")

	start, end, ok := parseDateRange(c)
	if !ok {
		return f, false
	}
	f.StartDate = start
	f.EndDate = end
	return f, true
}

func parseOptionalID(c *gin.Context, name string) (*int64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be an integer")
		return nil, false
	}
	return &id, true
}

// parseDateRange reads start_date/end_date as YYYY-MM-DD. The end bound is
// returned exclusive (start of the following day) so it matches "through the
// end of end_date" filtering.
func parseDateRange(c *gin.Context) (start, end *time.Time, ok bool) {
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be YYYY-MM-DD")
			return nil, nil, false
		}
		start = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be YYYY-MM-DD")
			return nil, nil, false
		}
		next := t.AddDate(0, 0, 1)
		end = &next
	}
	return start, end, true
}
