package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/config"
	"github.com/partsledger/partsledger-api/internal/infrastructure/database"
	"github.com/partsledger/partsledger-api/internal/infrastructure/repository"
	"github.com/partsledger/partsledger-api/internal/presentation/http/handler"
	"github.com/partsledger/partsledger-api/internal/presentation/http/routes"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the persisted state; a missing or corrupt blob falls back to
	// defaults inside Open
	stateRepo := repository.NewStateRepository(db)
	st, err := store.Open(stateRepo)
	if err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize services
	authService := service.NewAuthService(st, jwtManager)
	ledgerService := service.NewLedgerService(st)
	partService := service.NewPartService(st)
	customerService := service.NewCustomerService(st)
	notificationService := service.NewNotificationService(st)
	settingsService := service.NewSettingsService(st)
	backupService := service.NewBackupService(st)
	licenseService := service.NewLicenseService(st)
	dashboardService := service.NewDashboardService(st)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Part:         handler.NewPartHandler(partService),
		Customer:     handler.NewCustomerHandler(customerService),
		Operation:    handler.NewOperationHandler(ledgerService),
		Notification: handler.NewNotificationHandler(notificationService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Backup:       handler.NewBackupHandler(backupService),
		License:      handler.NewLicenseHandler(licenseService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
