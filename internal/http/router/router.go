package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"pathway.app/server/internal/http/handler"
	"pathway.app/server/internal/http/middleware"
	"pathway.app/server/internal/identity"
	"pathway.app/server/internal/service"
)

type RouterConfig struct {
	Identity identity.Provider
	Redis    *redis.Client

	RateLimitMax    int
	RateLimitWindow time.Duration

	// Realtime handles the websocket upgrade; mounted at /ws.
	Realtime gin.HandlerFunc
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.Use(middleware.OptionalAuth(cfg.Identity))

	api := router.Group("/api")
	if cfg.Redis != nil && cfg.RateLimitMax > 0 {
		api.Use(middleware.RateLimit(cfg.Redis, cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "status": "healthy"})
	})

	requestHandler := handler.NewServiceRequestHandler(services.Requests())
	conversationHandler := handler.NewConversationHandler(services.Messages())
	providerHandler := handler.NewProviderHandler(services.Providers())
	userHandler := handler.NewUserHandler(services.Users())

	ServiceRequestRouter(api, requestHandler)
	ConversationRouter(api, conversationHandler)
	ProviderRouter(api, providerHandler, userHandler, requestHandler, conversationHandler)

	if cfg.Realtime != nil {
		router.GET("/ws", cfg.Realtime)
	}
}
