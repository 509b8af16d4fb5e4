// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cluck-and-track/backend/internal/integration/entrypoint/controller"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	eggRecordController *controller.EggRecordController
	financeController   *controller.FinanceController
	flockController     *controller.FlockController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	eggRecordController *controller.EggRecordController,
	financeController *controller.FinanceController,
	flockController *controller.FlockController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		eggRecordController: eggRecordController,
		financeController:   financeController,
		flockController:     flockController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
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

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Egg record routes (require authentication)
		if r.eggRecordController != nil && r.authMiddleware != nil {
			records := v1.Group("/records")
			records.Use(r.authMiddleware.Authenticate())
			{
				records.GET("", r.eggRecordController.List)
				records.POST("", r.eggRecordController.Create)
				records.PATCH("/:id", r.eggRecordController.Update)
				records.PATCH("/:id/payment-status", r.eggRecordController.UpdatePaymentStatus)
				records.DELETE("/:id", r.eggRecordController.Delete)
			}
		}

		// Finance routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.financeController.ListExpenses)
				expenses.POST("", r.financeController.CreateExpense)
				expenses.PATCH("/:id", r.financeController.UpdateExpense)
				expenses.DELETE("/:id", r.financeController.DeleteExpense)
				expenses.POST("/suggest-category", r.financeController.SuggestCategory)
			}

			revenues := v1.Group("/revenues")
			revenues.Use(r.authMiddleware.Authenticate())
			{
				revenues.GET("", r.financeController.ListRevenues)
				revenues.POST("", r.financeController.CreateRevenue)
				revenues.DELETE("/:id", r.financeController.DeleteRevenue)
			}
		}

		// Flock management routes (require authentication)
		if r.flockController != nil && r.authMiddleware != nil {
			coops := v1.Group("/coops")
			coops.Use(r.authMiddleware.Authenticate())
			{
				coops.GET("", r.flockController.ListCoops)
				coops.POST("", r.flockController.CreateCoop)
			}

			cages := v1.Group("/cages")
			cages.Use(r.authMiddleware.Authenticate())
			{
				cages.GET("", r.flockController.ListCages)
				cages.POST("", r.flockController.CreateCage)
			}

			feed := v1.Group("/feed")
			feed.Use(r.authMiddleware.Authenticate())
			{
				feed.GET("", r.flockController.ListFeedItems)
				feed.POST("", r.flockController.CreateFeedItem)
				feed.POST("/:id/add", r.flockController.AddFeedStock)
				feed.POST("/:id/consume", r.flockController.ConsumeFeedStock)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.Generate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
