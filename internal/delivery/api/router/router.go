// Package router wires the API handlers to their routes.
package router

import (
	"medrep/config"
	"medrep/internal/delivery/api/middleware"
	"medrep/internal/delivery/api/router/handler"
	"medrep/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	IdentityHandler    *handler.IdentityHandler
	DoctorHandler      *handler.DoctorHandler
	ProductHandler     *handler.ProductHandler
	VisitHandler       *handler.VisitHandler
	OrderHandler       *handler.OrderHandler
	TargetHandler      *handler.TargetHandler
	PerformanceHandler *handler.PerformanceHandler
	ActivityHandler    *handler.ActivityHandler
	MRRequestHandler   *handler.MRRequestHandler
	DashboardHandler   *handler.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Metrics
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes mounts every API route under /api. Only login and the MR application are public.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	if p.Config.Metrics != nil && p.Config.Metrics.Enabled {
		e.GET(p.Config.Metrics.Path, echo.WrapHandler(p.Metrics.Handler()))
	}

	api := e.Group("/api")

	api.POST("/auth/login", p.AuthHandler.Login)
	api.POST("/mr-requests", p.MRRequestHandler.Create)

	secured := api.Group("", p.AuthMiddleware.Authenticate)

	authGroup := secured.Group("/auth")
	{
		authGroup.GET("/me", p.AuthHandler.Me)
		authGroup.PUT("/change-password", p.AuthHandler.ChangePassword)
	}

	users := secured.Group("/users")
	{
		users.GET("", p.IdentityHandler.List)
		users.POST("", p.IdentityHandler.Create)
		users.GET("/:id", p.IdentityHandler.Get)
		users.PUT("/:id", p.IdentityHandler.Update)
		users.DELETE("/:id", p.IdentityHandler.Deactivate)
	}

	doctors := secured.Group("/doctors")
	{
		doctors.GET("", p.DoctorHandler.List)
		doctors.POST("", p.DoctorHandler.Create)
		doctors.GET("/:id", p.DoctorHandler.Get)
		doctors.PUT("/:id", p.DoctorHandler.Update)
		doctors.DELETE("/:id", p.DoctorHandler.Delete)
		doctors.PUT("/:id/assign-mr", p.DoctorHandler.AssignMRs)
	}

	products := secured.Group("/products")
	{
		products.GET("", p.ProductHandler.List)
		products.POST("", p.ProductHandler.Create)
		products.GET("/:id", p.ProductHandler.Get)
		products.PUT("/:id", p.ProductHandler.Update)
		products.DELETE("/:id", p.ProductHandler.Delete)
	}

	visits := secured.Group("/visits")
	{
		visits.GET("", p.VisitHandler.List)
		visits.POST("", p.VisitHandler.Create)
		visits.GET("/:id", p.VisitHandler.Get)
		visits.PUT("/:id", p.VisitHandler.Update)
		visits.DELETE("/:id", p.VisitHandler.Delete)
		visits.POST("/:id/approve", p.VisitHandler.Approve)
		visits.POST("/:id/reject", p.VisitHandler.Reject)
	}

	orders := secured.Group("/orders")
	{
		orders.GET("", p.OrderHandler.List)
		orders.POST("", p.OrderHandler.Create)
		orders.GET("/:id", p.OrderHandler.Get)
		orders.PUT("/:id", p.OrderHandler.Update)
		orders.DELETE("/:id", p.OrderHandler.Delete)
		orders.PUT("/:id/status", p.OrderHandler.UpdateStatus)
		orders.POST("/:id/cancel", p.OrderHandler.Cancel)
	}

	targets := secured.Group("/targets")
	{
		targets.GET("", p.TargetHandler.List)
		targets.POST("", p.TargetHandler.Create)
		targets.GET("/:id", p.TargetHandler.Get)
		targets.PUT("/:id", p.TargetHandler.Update)
		targets.DELETE("/:id", p.TargetHandler.Delete)
	}

	performance := secured.Group("/performance")
	{
		performance.GET("", p.PerformanceHandler.List)
		performance.POST("", p.PerformanceHandler.Create)
		performance.POST("/rollup", p.PerformanceHandler.Rollup)
		performance.GET("/:id", p.PerformanceHandler.Get)
		performance.PUT("/:id", p.PerformanceHandler.Update)
		performance.DELETE("/:id", p.PerformanceHandler.Delete)
	}

	activities := secured.Group("/activities")
	{
		activities.GET("", p.ActivityHandler.List)
		activities.POST("", p.ActivityHandler.Create)
		activities.GET("/summary", p.ActivityHandler.Summary)
	}

	mrRequests := secured.Group("/mr-requests")
	{
		mrRequests.GET("", p.MRRequestHandler.List)
		mrRequests.GET("/:id", p.MRRequestHandler.Get)
		mrRequests.POST("/:id/approve", p.MRRequestHandler.Approve)
		mrRequests.POST("/:id/reject", p.MRRequestHandler.Reject)
	}

	dashboard := secured.Group("/dashboard")
	{
		dashboard.GET("/admin", p.DashboardHandler.Admin)
		dashboard.GET("/mr", p.DashboardHandler.MR)
	}
}
