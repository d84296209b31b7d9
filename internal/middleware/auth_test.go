package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guestnest/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", 1*time.Hour)
	validToken, _ := jwtService.GenerateToken(42, "guest")

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    role,
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "guest")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("wrong-secret", 1*time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_NoToken(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)

	router := gin.New()
	router.Use(OptionalAuth(jwtService))
	router.GET("/open", func(c *gin.Context) {
		_, hasUser := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"has_user": hasUser})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}

func TestOptionalAuth_TokenPopulatesContext(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	token, _ := jwtService.GenerateToken(7, "guest")

	router := gin.New()
	router.Use(OptionalAuth(jwtService))
	router.GET("/open", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7")
}

func TestRequireRole_Forbidden(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	token, _ := jwtService.GenerateToken(1, "guest")

	router := gin.New()
	router.Use(Auth(jwtService), RequireRole("admin", "host"))
	router.GET("/admin", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	token, _ := jwtService.GenerateToken(1, "host")

	router := gin.New()
	router.Use(Auth(jwtService), RequireRole("admin", "host"))
	router.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
