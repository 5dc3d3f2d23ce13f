package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "smarttradex/internal/middleware"
)

// Pinger is the subset of the database pool the health check needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler   *AuthHandler
	TradeHandler  *TradeHandler
	MarketHandler *MarketHandler
	DB            Pinger
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for the health probe to reduce noise
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus := "healthy"
		if err := config.DB.Ping(ctx); err != nil {
			dbStatus = "unhealthy"
		}

		return SuccessResponse(c, map[string]interface{}{
			"status":    "healthy",
			"service":   "smarttradex-api",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
	}

	// Market routes (protected with AuthMiddleware)
	market := api.Group("/market", custommiddleware.AuthMiddleware)
	{
		market.GET("/:symbol/chart", config.MarketHandler.Chart)
		market.GET("/:symbol/forecast", config.MarketHandler.Forecast)
	}

	// Trade routes (protected with AuthMiddleware)
	trades := api.Group("/trades", custommiddleware.AuthMiddleware)
	{
		trades.POST("", config.TradeHandler.Execute)
		trades.GET("", config.TradeHandler.History)
	}
}
