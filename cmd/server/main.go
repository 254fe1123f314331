package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"dj-backend/internal/auth"
	"dj-backend/internal/cache"
	"dj-backend/internal/config"
	"dj-backend/internal/database"
	"dj-backend/internal/db"
	"dj-backend/internal/handlers"
	"dj-backend/internal/health"
	h "dj-backend/internal/http"
	"dj-backend/internal/middleware"
	"dj-backend/internal/monitoring"
	"dj-backend/internal/repositories"
	"dj-backend/internal/services"
	"dj-backend/internal/sms"
	"dj-backend/internal/whatsapp"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start monitoring dashboard server in background
	go monitoring.NewServer(pool, cfg.Server.MonitoringPort).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	bookingRepo := repositories.NewBookingRepository(pool)
	financeRepo := repositories.NewFinanceRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	productRequestRepo := repositories.NewProductRequestRepository(pool)
	packageRepo := repositories.NewPackageRepository(pool)
	systemSettingRepo := repositories.NewSystemSettingRepository(pool)
	otpRepo := repositories.NewOTPRepository(pool)
	totpRepo := repositories.NewTOTPRepository(pool)
	cleanupRepo := repositories.NewCleanupRepository(pool)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// SMS provider for customer OTP login. Only the mock provider ships;
	// it prints codes to the log.
	smsProvider := sms.NewMockProvider()

	// Initialize services
	razorpayService := services.NewRazorpayService(cfg)
	whatsappService := whatsapp.NewService(cfg.Business.Name, cfg.Business.CountryCode)
	userService := services.NewUserService(userRepo, jwtManager)
	bookingService := services.NewBookingService(bookingRepo, razorpayService, whatsappService)
	ledgerService := services.NewLedgerService(userRepo, bookingRepo)
	financeService := services.NewFinanceService(financeRepo, bookingRepo, userRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	productRequestService := services.NewProductRequestService(productRequestRepo)
	packageService := services.NewPackageService(packageRepo)
	settingService := services.NewSettingService(systemSettingRepo)
	otpService := services.NewOTPService(otpRepo, userRepo, jwtManager, smsProvider)
	totpService := services.NewTOTPService(totpRepo, userRepo, cfg.Business.Name)
	reportService := services.NewReportService(bookingRepo, financeRepo, ledgerService, cfg.Business.Name)
	backupService := services.NewBackupService(cfg, userRepo, bookingRepo, financeRepo)
	cleanupService := services.NewCleanupService(cleanupRepo, backupService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, otpService, totpService, jwtManager)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, reportService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	productRequestHandler := handlers.NewProductRequestHandler(productRequestService)
	packageHandler := handlers.NewPackageHandler(packageService)
	systemSettingHandler := handlers.NewSystemSettingHandler(settingService)
	statsHandler := handlers.NewStatsHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(cleanupService, backupService)
	totpHandler := handlers.NewTOTPHandler(totpService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router and middleware chain
	router := h.NewRouter(
		authHandler,
		userHandler,
		bookingHandler,
		financeHandler,
		ledgerHandler,
		inventoryHandler,
		productRequestHandler,
		packageHandler,
		systemSettingHandler,
		statsHandler,
		reportHandler,
		adminHandler,
		totpHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(middleware.RequestLogging(corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("%s backend running on %s", cfg.Business.Name, addr)
	if backupService.Enabled() {
		log.Println("[Backup] Cloud snapshots enabled")
	}

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
