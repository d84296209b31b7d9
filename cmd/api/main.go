package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"guestnest/internal/config"
	"guestnest/internal/database"
	"guestnest/internal/middleware"
	"guestnest/internal/modules/admin"
	"guestnest/internal/modules/assistant"
	"guestnest/internal/modules/catalog"
	"guestnest/internal/modules/chat"
	"guestnest/internal/modules/feedback"
	"guestnest/internal/modules/issues"
	"guestnest/internal/modules/notification"
	"guestnest/internal/modules/orders"
	"guestnest/internal/modules/places"
	"guestnest/internal/modules/planner"
	"guestnest/internal/modules/property"
	"guestnest/internal/modules/weather"
	jwtsvc "guestnest/internal/pkg/jwt"
	"guestnest/internal/pkg/logger"
	"guestnest/internal/repository"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	cache := newRedisClient(cfg, zlog)

	orderRepo := repository.NewOrderRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	placesRepo := repository.NewPlacesRepository(db)
	plannerRepo := repository.NewPlannerRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	notifService := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifService)

	orderService := orders.NewService(orderRepo, partnerRepo, notifService)
	orderHandler := orders.NewHandler(orderService)

	adminService := admin.NewService(orderRepo, userRepo)
	adminHandler := admin.NewHandler(adminService)

	chatService := chat.NewService(chatRepo)
	chatHandler := chat.NewHandler(chatService)

	hub := chat.NewHub()
	wsHandler := chat.NewWSHandler(hub, j)

	catalogService := catalog.NewService(serviceRepo, partnerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	weatherService := weather.NewService(weatherClient, propertyRepo, cache, zlog)
	weatherHandler := weather.NewHandler(weatherService)

	var completer assistant.Completer
	if cfg.AssistantAPIKey != "" {
		completer = assistant.NewClient(cfg.AssistantAPIURL, cfg.AssistantAPIKey, "gpt-4")
	} else {
		zlog.Warn("ASSISTANT_API_KEY not set, assistant endpoints will return 503")
	}
	assistantService := assistant.NewService(completer, propertyRepo, placesRepo)
	assistantHandler := assistant.NewHandler(assistantService)

	plannerService := planner.NewService(plannerRepo)
	plannerHandler := planner.NewHandler(plannerService)

	placesService := places.NewService(placesRepo)
	placesHandler := places.NewHandler(placesService)

	issueService := issues.NewService(issueRepo)
	issueHandler := issues.NewHandler(issueService)

	feedbackService := feedback.NewService(feedbackRepo)
	feedbackHandler := feedback.NewHandler(feedbackService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.GET("/health/db", func(c *gin.Context) {
			if err := database.Ping(db); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// assistant allows anonymous guests; user context is optional
		optional := api.Group("/")
		optional.Use(middleware.OptionalAuth(j))
		{
			assistantHandler.RegisterRoutes(optional)
		}

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			orderHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			propertyHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			weatherHandler.RegisterRoutes(protected)
			plannerHandler.RegisterRoutes(protected)
			placesHandler.RegisterRoutes(protected)
			issueHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.RequireRole("admin", "host"))
			{
				adminHandler.RegisterRoutes(adminGroup)
			}

			adminOnly := protected.Group("/admin")
			adminOnly.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterUserRoutes(adminOnly)
			}
		}
	}

	r.GET("/ws/chat", wsHandler.HandleWebSocket)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// newRedisClient connects to redis when REDIS_ADDR is set. A nil return
// disables the weather cache; everything else works without redis.
func newRedisClient(cfg config.Config, zlog *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zlog.Warn("redis unavailable, caching disabled", zap.Error(err))
		return nil
	}
	return client
}
