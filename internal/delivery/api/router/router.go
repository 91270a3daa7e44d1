// Package router contains routing for the HTTP API.
package router

import (
	"examhub/internal/delivery/api/middleware"
	"examhub/internal/delivery/api/router/handler"
	"examhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LifecycleHandler *handler.LifecycleHandler
	AccountHandler   *handler.AccountHandler
	ExamHandler      *handler.ExamHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	lifecycleHandler *handler.LifecycleHandler
	accountHandler   *handler.AccountHandler
	examHandler      *handler.ExamHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		lifecycleHandler: params.LifecycleHandler,
		accountHandler:   params.AccountHandler,
		examHandler:      params.ExamHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public lifecycle routes
	apiV1.POST("/workers/register", r.lifecycleHandler.RegisterWorker)
	apiV1.POST("/companies/register", r.lifecycleHandler.RegisterCompany)
	apiV1.POST("/auth/login", r.lifecycleHandler.Login)

	accountsGroup := apiV1.Group("/accounts")
	{
		accountsGroup.POST("/confirm", r.lifecycleHandler.Confirm)
		accountsGroup.POST("/resend-activation", r.lifecycleHandler.ResendActivation)
		accountsGroup.POST("/password-reset", r.lifecycleHandler.RequestCredentialReset)
		accountsGroup.POST("/password-reset/confirm", r.lifecycleHandler.ConfirmCredentialReset)
		accountsGroup.DELETE("/pending", r.lifecycleHandler.PurgePending,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	r.registerDirectory(apiV1.Group("/workers"), entity.AccountKindWorker)
	r.registerDirectory(apiV1.Group("/companies"), entity.AccountKindCompany)

	// Exam routes require authentication. Writes are limited to staff and companies,
	// and non-staff callers only see the exams they take part in.
	examsGroup := apiV1.Group("/exams")
	examsGroup.Use(r.authMiddleware.Authenticate)
	{
		canWrite := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleEditor, entity.RoleCompany)

		examsGroup.GET("", r.examHandler.List)
		examsGroup.GET("/:id", r.examHandler.Get)
		examsGroup.GET("/:id/images", r.examHandler.ListImages)
		examsGroup.GET("/:id/pass", r.examHandler.ExamPass)
		examsGroup.POST("", r.examHandler.Create, canWrite)
		examsGroup.PUT("/:id", r.examHandler.Update, canWrite)
		examsGroup.DELETE("/:id", r.examHandler.Delete, canWrite)
		examsGroup.POST("/:id/images", r.examHandler.UploadImages, canWrite)
		examsGroup.DELETE("/:id/images", r.examHandler.DeleteImages, canWrite)
	}

	dashboardGroup := apiV1.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	dashboardGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		dashboardGroup.GET("", r.dashboardHandler.Stats)
	}
}

// registerDirectory mounts the account directory of one kind.
// Browsing is reserved to staff and deleting accounts to admins.
func (r *router) registerDirectory(group *echo.Group, kind entity.AccountKind) {
	group.Use(r.authMiddleware.Authenticate)
	staffOnly := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleEditor)

	group.GET("", r.accountHandler.List(kind), staffOnly)
	group.GET("/search", r.accountHandler.Search(kind), staffOnly)
	group.GET("/:id", r.accountHandler.Get(kind))
	group.PUT("/:id", r.accountHandler.Update(kind))
	group.DELETE("/:id", r.accountHandler.Delete(kind), r.authMiddleware.RequireRole(entity.RoleAdmin))
}
