package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	httpapi "vehiclerental-backend/internal/api/http"
	"vehiclerental-backend/internal/config"
	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/jobs"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository/memory"
	"vehiclerental-backend/internal/scheduler"
	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize Repositories. Everything lives in memory; a restart
	// starts from a clean slate plus whatever seeding is configured.
	store := memory.NewStore()

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)
	if cfg.Email.SendGridAPIKey == "" {
		logger.Info("SendGrid API key not configured, outbound email disabled")
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	catalogSvc := service.NewCatalogService(store.VehicleRepository, store.UserRepository)
	rentalSvc := service.NewRentalService(
		store.BookingRepository,
		store.VehicleRepository,
		store.UserRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.UserRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Seed demo data
	if cfg.Seed.Enabled {
		if err := seedData(cfg, authSvc, catalogSvc); err != nil {
			logger.Error("Failed to seed data", "error", err)
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	// Initialize Scheduler. The overdue report job shares the in-memory
	// store, so it runs inside the server process.
	jobRunner := jobs.NewJobRunner(store.BookingRepository, store.UserRepository, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Catalog:      catalogSvc,
		Rental:       rentalSvc,
		Payment:      paymentSvc,
		Notification: noteSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// seedData registers the configured admin and demo customer accounts plus
// a small demo fleet
func seedData(cfg *config.Config, authSvc service.AuthService, catalogSvc service.CatalogService) error {
	ctx := context.Background()

	admin, err := authSvc.Register(ctx, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, domain.RoleAdmin)
	if err != nil {
		return err
	}
	logger.Info("Seeded admin account", "email", admin.Email)

	customer, err := authSvc.Register(ctx, cfg.Seed.CustomerName, cfg.Seed.CustomerEmail, cfg.Seed.CustomerPassword, domain.RoleCustomer)
	if err != nil {
		return err
	}
	logger.Info("Seeded customer account", "email", customer.Email)

	fleet := []service.AddVehicleParams{
		{ID: "C001", Brand: "Toyota", Model: "Corolla", Year: 2020, PricePerDay: decimal.NewFromInt(50), Quantity: 3, Category: domain.VehicleCategoryCar, Subtype: "Sedan"},
		{ID: "C002", Brand: "Tesla", Model: "Model 3", Year: 2023, PricePerDay: decimal.NewFromInt(120), Quantity: 2, Category: domain.VehicleCategoryCar, Subtype: "Sedan"},
		{ID: "V001", Brand: "Ford", Model: "Transit", Year: 2021, PricePerDay: decimal.NewFromInt(90), Quantity: 1, Category: domain.VehicleCategoryVan, Subtype: "Cargo Van"},
		{ID: "B001", Brand: "Trek", Model: "Marlin 7", Year: 2022, PricePerDay: decimal.NewFromInt(15), Quantity: 5, Category: domain.VehicleCategoryBike, Subtype: "Mountain"},
	}
	for _, params := range fleet {
		if _, err := catalogSvc.AddVehicle(ctx, admin.Email, params); err != nil {
			return err
		}
	}
	logger.Info("Seeded demo fleet", "vehicles", len(fleet))
	return nil
}
