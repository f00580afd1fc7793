// File: terapiku/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terapiku/config"
	"terapiku/cron"
	"terapiku/database"
	catalogRepo "terapiku/database/repository/catalog"
	sessionRepo "terapiku/database/repository/session"
	"terapiku/handlers"
	"terapiku/middleware"
	"terapiku/routes"
	"terapiku/services/booking"
	"terapiku/services/notification"
	"terapiku/services/tasks"
	"terapiku/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCheckoutCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessions := sessionRepo.NewMongoSessionRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.Scheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
	}

	// services.
	checker := &booking.DefaultAvailabilityChecker{
		Repo: sessions,
		Hours: booking.WorkingHours{
			Open:            config.AppConfig.ClinicOpen,
			Close:           config.AppConfig.ClinicClose,
			IntervalMinutes: config.AppConfig.SlotIntervalMin,
		},
	}
	engine := &booking.DefaultSchedulingEngine{
		Repo:      sessions,
		Checker:   checker,
		Reminders: reminderScheduler,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Cache:   utils.GetCheckoutCacheClient(),
		Catalog: catalog,
		Engine:  engine,
		TTL:     time.Duration(config.AppConfig.CheckoutTTLMin) * time.Minute,
	}
	statusService := &booking.DefaultStatusService{
		Repo: sessions,
	}

	bookingHandler := handlers.NewBookingHandler(checkoutService, checker, catalog, logger)
	sessionHandler := handlers.NewSessionHandler(statusService, sessions, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, sessionHandler)

	// Start the reminder worker.
	cron.InitReminderWorker(&notification.LogNotificationService{})

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

	logger.Sugar().Info("main: server stopped gracefully")
}
