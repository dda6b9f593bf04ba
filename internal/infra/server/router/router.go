// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifequest/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	sessionController      *controller.SessionController
	profileController      *controller.ProfileController
	taskController         *controller.TaskController
	transactionController  *controller.TransactionController
	goalController         *controller.GoalController
	notificationController *controller.NotificationController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	sessionController *controller.SessionController,
	profileController *controller.ProfileController,
	taskController *controller.TaskController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	notificationController *controller.NotificationController,
) *Router {
	return &Router{
		healthController:       healthController,
		sessionController:      sessionController,
		profileController:      profileController,
		taskController:         taskController,
		transactionController:  transactionController,
		goalController:         goalController,
		notificationController: notificationController,
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
		v1.POST("/session", r.sessionController.Start)
		v1.GET("/profile", r.profileController.Get)

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", r.taskController.List)
			tasks.POST("", r.taskController.Create)
			tasks.PATCH("/:id", r.taskController.Update)
			tasks.POST("/:id/toggle", r.taskController.Toggle)
			tasks.DELETE("/:id", r.taskController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.POST("/:id/increment", r.goalController.Increment)
			goals.POST("/:id/decrement", r.goalController.Decrement)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		v1.GET("/notifications", r.notificationController.List)
	}
}
