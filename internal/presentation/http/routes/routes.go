package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/config"
	"github.com/partsledger/partsledger-api/internal/presentation/http/handler"
	"github.com/partsledger/partsledger-api/internal/presentation/http/middleware"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Part         *handler.PartHandler
	Customer     *handler.CustomerHandler
	Operation    *handler.OperationHandler
	Notification *handler.NotificationHandler
	Settings     *handler.SettingsHandler
	Backup       *handler.BackupHandler
	License      *handler.LicenseHandler
	Dashboard    *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Parts
	parts := protected.Group("/parts")
	{
		parts.GET("", h.Part.List)
		parts.GET("/low-stock", h.Part.ListLowStock)
		parts.GET("/:id", h.Part.Get)
		parts.POST("", h.Part.Create)
		parts.PUT("/:id", h.Part.Update)
		parts.DELETE("/:id", h.Part.Delete)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Operations
	operations := protected.Group("/operations")
	{
		operations.GET("", h.Operation.List)
		operations.GET("/:id", h.Operation.Get)
		operations.POST("", h.Operation.Create)
		operations.DELETE("/:id", h.Operation.Delete)
	}

	// Notifications
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("/clear", h.Notification.Clear)
		notifications.PUT("/:id/read", h.Notification.MarkRead)
	}

	// Settings: reads are open to any session, edits need the admin role
	protected.GET("/settings", h.Settings.Get)
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.PUT("/settings/theme", h.Settings.UpdateTheme)
		admin.PUT("/settings/receipt", h.Settings.UpdateReceipt)
		admin.PUT("/settings/password", h.Settings.ChangePassword)

		// Backup
		admin.GET("/backup/export", h.Backup.Export)
		admin.POST("/backup/import", h.Backup.Import)

		// License
		admin.GET("/license", h.License.Get)
		admin.POST("/license/activate", h.License.Activate)
	}
}
