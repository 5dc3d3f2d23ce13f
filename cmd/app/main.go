package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"smarttradex/configs"
	"smarttradex/internal/adapter"
	"smarttradex/internal/database"
	delivery "smarttradex/internal/delivery/http"
	"smarttradex/internal/infra"
	"smarttradex/internal/repository"
	"smarttradex/internal/service"
	"smarttradex/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.Auth.AllowDuplicateUsernames); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	// Initialize collaborator bridges
	marketGateway := adapter.NewYahooBridge("")
	forecastBridge := adapter.NewForecastBridge(cfg.Forecast.URL)

	// Health check forecast engine
	log.Println("Checking Forecast Engine health...")
	if err := forecastBridge.HealthCheck(ctx); err != nil {
		log.Printf("WARNING: Forecast Engine is not available: %v", err)
		log.Println("Charts will work, but forecast requests will fail until the engine is running")
	} else {
		log.Println("[OK] Forecast Engine is healthy")
	}

	// Initialize services
	quoteCache := service.NewQuoteCache(time.Duration(cfg.Market.RefreshMinutes) * time.Minute)
	authService := usecase.NewAuthService(userRepo, cfg.Auth.AllowDuplicateUsernames)
	tradeService := usecase.NewTradeService(tradeRepo)
	marketService := usecase.NewMarketService(
		marketGateway,
		forecastBridge,
		quoteCache,
		cfg.Market.Period,
		cfg.Forecast.HorizonDays,
	)

	// Initialize quote refresh scheduler
	scheduler := infra.NewScheduler(marketService, cfg.Market.RefreshMinutes)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		AuthHandler:   delivery.NewAuthHandler(authService),
		TradeHandler:  delivery.NewTradeHandler(tradeService),
		MarketHandler: delivery.NewMarketHandler(marketService),
		DB:            db,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("SmartTradeX starting on %s", addr)
	log.Printf("Environment: %s", cfg.Server.Env)
	log.Printf("Market period: %s | Forecast horizon: %d days", cfg.Market.Period, cfg.Forecast.HorizonDays)
	if cfg.Auth.AllowDuplicateUsernames {
		log.Println("[WARN] Duplicate usernames are ALLOWED (legacy mode)")
	}

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
