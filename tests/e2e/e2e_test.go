package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guestnest/internal/database"
	"guestnest/internal/domain"
	"guestnest/internal/middleware"
	"guestnest/internal/modules/admin"
	"guestnest/internal/modules/chat"
	"guestnest/internal/modules/notification"
	"guestnest/internal/modules/orders"
	jwtsvc "guestnest/internal/pkg/jwt"
	"guestnest/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// Use in-memory SQLite for testing
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Partner{},
		&domain.Service{},
		&domain.Order{},
		&domain.ChatMessage{},
		&domain.Notification{},
	}
	for _, model := range models {
		err := db.AutoMigrate(model)
		require.NoError(t, err, fmt.Sprintf("Failed to migrate %T", model))
	}

	orderRepo := repository.NewOrderRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	notifService := notification.NewService(notifRepo)
	orderService := orders.NewService(orderRepo, partnerRepo, notifService)
	orderHandler := orders.NewHandler(orderService)

	adminService := admin.NewService(orderRepo, userRepo)
	adminHandler := admin.NewHandler(adminService)

	chatService := chat.NewService(chatRepo)
	chatHandler := chat.NewHandler(chatService)

	notifHandler := notification.NewHandler(notifService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	protected := api.Group("/")
	protected.Use(middleware.Auth(jwtService))
	{
		orderHandler.RegisterRoutes(protected)
		chatHandler.RegisterRoutes(protected)
		notifHandler.RegisterRoutes(protected)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.RequireRole("admin", "host"))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	return &E2ETestSuite{
		router:     r,
		db:         db,
		jwtService: jwtService,
	}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

func (s *E2ETestSuite) token(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// seedWorld creates the base fixture: one host with a property, one guest
// with an active booking, one admin and two partners with different
// commission terms.
func (s *E2ETestSuite) seedWorld(t *testing.T) (guest, host, adminUser domain.User, property domain.Property, booking domain.Booking, pctPartner, fixedPartner domain.Partner) {
	t.Helper()

	adminUser = domain.User{Email: "admin@test.com", Role: domain.RoleAdmin, FirstName: "Admin", LastName: "User"}
	host = domain.User{Email: "host@test.com", Role: domain.RoleHost, FirstName: "Maria", LastName: "Santos"}
	guest = domain.User{Email: "guest@test.com", Role: domain.RoleGuest, FirstName: "John", LastName: "Walker"}
	for _, u := range []*domain.User{&adminUser, &host, &guest} {
		require.NoError(t, s.db.Create(u).Error)
	}

	property = domain.Property{HostID: host.ID, Name: "Casa do Mar", Address: "Rua da Praia 12"}
	require.NoError(t, s.db.Create(&property).Error)

	today := time.Now().Truncate(24 * time.Hour)
	booking = domain.Booking{
		PropertyID:   property.ID,
		GuestID:      guest.ID,
		CheckInDate:  today.AddDate(0, 0, -2),
		CheckOutDate: today.AddDate(0, 0, 5),
		Status:       domain.BookingActive,
	}
	require.NoError(t, s.db.Create(&booking).Error)

	pctPartner = domain.Partner{Name: "Ria Formosa Tours", ServiceType: domain.ServiceExcursion, CommissionPercentage: 15, IsActive: true}
	fixedPartner = domain.Partner{Name: "Faro Rides", ServiceType: domain.ServiceTaxi, CommissionFixed: 2.5, IsActive: true}
	require.NoError(t, s.db.Create(&pctPartner).Error)
	require.NoError(t, s.db.Create(&fixedPartner).Error)

	return
}

// =============================================================================
// Flow 1: order lifecycle, commission snapshot to reporting
// =============================================================================

func TestFlow1_OrderLifecycleAndCommissions(t *testing.T) {
	suite := setupTestSuite(t)
	guest, _, adminUser, property, _, pctPartner, fixedPartner := suite.seedWorld(t)

	guestToken := suite.token(t, guest.ID, "guest")
	adminToken := suite.token(t, adminUser.ID, "admin")

	var excursionOrderID float64

	t.Run("POST /orders with percentage partner", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/orders", map[string]interface{}{
			"property_id":  property.ID,
			"service_type": "excursion",
			"partner_id":   pctPartner.ID,
			"price":        60.0,
			"order_details": map[string]interface{}{
				"participants": 2,
			},
		}, guestToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, 15.0, resp.Data["commission_percentage"])
		assert.Equal(t, 9.0, resp.Data["commission_amount"])
		assert.Equal(t, "pending", resp.Data["status"])
		excursionOrderID = resp.Data["id"].(float64)
	})

	t.Run("POST /orders with fixed-fee partner and no price", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/orders", map[string]interface{}{
			"property_id":  property.ID,
			"service_type": "taxi",
			"partner_id":   fixedPartner.ID,
		}, guestToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, 2.5, resp.Data["commission_amount"])
	})

	t.Run("POST /orders rejects unknown service type", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/orders", map[string]interface{}{
			"property_id":  property.ID,
			"service_type": "helicopter",
		}, guestToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /orders rejects unknown partner", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/orders", map[string]interface{}{
			"property_id":  property.ID,
			"service_type": "taxi",
			"partner_id":   99999,
		}, guestToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /orders/my-orders lists both", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/orders/my-orders", nil, guestToken)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Len(t, resp.Data["orders"], 2)
	})

	t.Run("PATCH /orders/:id/status to completed stamps completed_at", func(t *testing.T) {
		path := fmt.Sprintf("/api/orders/%d/status", int64(excursionOrderID))
		w := suite.makeRequest(t, "PATCH", path, map[string]interface{}{"status": "completed"}, adminToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var o domain.Order
		require.NoError(t, suite.db.First(&o, int64(excursionOrderID)).Error)
		assert.Equal(t, domain.OrderCompleted, o.Status)
		require.NotNil(t, o.CompletedAt)
	})

	t.Run("commission snapshot survives partner rate change", func(t *testing.T) {
		require.NoError(t, suite.db.Model(&domain.Partner{}).
			Where("id = ?", pctPartner.ID).
			Update("commission_percentage", 50).Error)

		var o domain.Order
		require.NoError(t, suite.db.First(&o, int64(excursionOrderID)).Error)
		assert.Equal(t, 15.0, o.CommissionPercentage)
		assert.Equal(t, 9.0, o.CommissionAmount)
	})

	t.Run("GET /admin/commissions aggregates completed orders only", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/admin/commissions", nil, adminToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := parseResponse(t, w)

		summary := resp.Data["summary"].([]interface{})
		require.Len(t, summary, 1) // taxi order is still pending
		group := summary[0].(map[string]interface{})
		assert.Equal(t, 1.0, group["total_orders"])
		assert.Equal(t, 9.0, group["total_commission"])

		totals := resp.Data["totals"].(map[string]interface{})
		assert.Equal(t, 1.0, totals["total_orders"])
		assert.Equal(t, 9.0, totals["total_commission"])
	})

	t.Run("reverting status clears completed_at and drops it from reports", func(t *testing.T) {
		path := fmt.Sprintf("/api/orders/%d/status", int64(excursionOrderID))
		w := suite.makeRequest(t, "PATCH", path, map[string]interface{}{"status": "in_progress"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var o domain.Order
		require.NoError(t, suite.db.First(&o, int64(excursionOrderID)).Error)
		assert.Nil(t, o.CompletedAt)

		w = suite.makeRequest(t, "GET", "/api/admin/commissions", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Empty(t, resp.Data["summary"])
	})

	t.Run("guest cannot reach the admin dashboard", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/admin/orders", nil, guestToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GET /admin/orders/export carries metadata", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/admin/orders/export", nil, adminToken)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 2.0, resp.Data["total_records"])
		assert.NotEmpty(t, resp.Data["export_date"])
	})
}

// =============================================================================
// Flow 2: booking-scoped chat
// =============================================================================

func TestFlow2_BookingChat(t *testing.T) {
	suite := setupTestSuite(t)
	guest, host, _, _, booking, _, _ := suite.seedWorld(t)

	outsider := domain.User{Email: "other@test.com", Role: domain.RoleGuest, FirstName: "Eve", LastName: "Smith"}
	require.NoError(t, suite.db.Create(&outsider).Error)

	guestToken := suite.token(t, guest.ID, "guest")
	hostToken := suite.token(t, host.ID, "host")
	outsiderToken := suite.token(t, outsider.ID, "guest")

	t.Run("guest sends a message", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/chat", map[string]interface{}{
			"booking_id":  booking.ID,
			"receiver_id": host.ID,
			"message":     "How do we turn on the pool heater?",
		}, guestToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, "How do we turn on the pool heater?", resp.Data["message"])
		assert.Equal(t, "John", resp.Data["first_name"])
		assert.Equal(t, false, resp.Data["is_read"])
	})

	t.Run("host replies", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/chat", map[string]interface{}{
			"booking_id":  booking.ID,
			"receiver_id": guest.ID,
			"message":     "Switch is in the garage, left panel.",
		}, hostToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("outsider gets 404, not 403", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/chat", map[string]interface{}{
			"booking_id":  booking.ID,
			"receiver_id": host.ID,
			"message":     "Let me in",
		}, outsiderToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/chat/booking/%d", booking.ID), nil, outsiderToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("fetching marks the requester's incoming messages read", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", fmt.Sprintf("/api/chat/booking/%d", booking.ID), nil, guestToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		msgs := resp.Data["messages"].([]interface{})
		require.Len(t, msgs, 2)

		// oldest first; the host's reply is addressed to the guest and is now read
		for _, raw := range msgs {
			m := raw.(map[string]interface{})
			if m["receiver_id"].(float64) == float64(guest.ID) {
				assert.Equal(t, true, m["is_read"])
			}
		}

		// the guest's own outgoing message stays unread until the host fetches
		var unread int64
		require.NoError(t, suite.db.Model(&domain.ChatMessage{}).
			Where("booking_id = ? AND receiver_id = ? AND is_read = ?", booking.ID, host.ID, false).
			Count(&unread).Error)
		assert.Equal(t, int64(1), unread)
	})
}

// =============================================================================
// Flow 3: order creation raises a notification for the guest
// =============================================================================

func TestFlow3_OrderNotification(t *testing.T) {
	suite := setupTestSuite(t)
	guest, _, _, property, _, pctPartner, _ := suite.seedWorld(t)

	guestToken := suite.token(t, guest.ID, "guest")

	w := suite.makeRequest(t, "POST", "/api/orders", map[string]interface{}{
		"property_id":  property.ID,
		"service_type": "excursion",
		"partner_id":   pctPartner.ID,
		"price":        60.0,
	}, guestToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = suite.makeRequest(t, "GET", "/api/notifications/my-notifications?unread_only=true", nil, guestToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "order_created", resp.Data[0]["type"])
}
