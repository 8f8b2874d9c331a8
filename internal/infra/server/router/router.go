// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	settingsController    *controller.SettingsController
	dashboardController   *controller.DashboardController
	authRateLimiter       *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	settingsController *controller.SettingsController,
	dashboardController *controller.DashboardController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		settingsController:    settingsController,
		dashboardController:   dashboardController,
		authRateLimiter:       authRateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(r.corsMiddleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(r.allowedOrigins) == 0 || (len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = r.allowedOrigins
	}
	return cors.New(config)
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	if r.authRateLimiter != nil {
		auth.Use(r.authRateLimiter.Middleware())
	}
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		protected.GET("/categories", r.categoryController.List)
		protected.POST("/categories/suggest", r.categoryController.Suggest)

		transactions := protected.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/export", r.transactionController.Export)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", r.settingsController.Update)
			settings.PUT("/subscription", r.settingsController.UpdateSubscription)
			settings.POST("/reset", r.settingsController.Reset)
		}

		protected.GET("/dashboard", r.dashboardController.GetOverview)
		protected.GET("/analysis", r.dashboardController.GetAnalysis)
	}
}
