package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"slotbook/config"
	"slotbook/database"
	bookingRepo "slotbook/database/repository/booking"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/scheduling"
	"slotbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	repo := bookingRepo.NewMongoBookingRepo(db)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	var cache *redis.Client
	if config.AppConfig.RedisAddr != "" {
		cache = utils.GetCacheClient()
	}

	zone := time.FixedZone(config.AppConfig.TZLabel, config.AppConfig.TZOffsetMinutes*60)
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:     repo,
		Cache:    cache,
		CacheTTL: time.Duration(config.AppConfig.AvailabilityCacheTTLSeconds) * time.Second,
		Zone:     zone,
		Label:    config.AppConfig.TZLabel,
		Logger:   logger,
	}
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		GetAvailability: schedulingHandler.GetAvailability,
		CreateBooking:   schedulingHandler.CreateBooking,
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(client, cache)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: error disconnecting from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
