package routes

import (
	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/services"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with middleware and every route wired to s.
func NewRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), gin.Recovery(), middleware.CORS(cfg.CORSOrigins))
	SetupRoutes(r, cfg, s)
	return r
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, s *store.Store) {
	policy := statemachine.Policy{Strict: cfg.StrictStatusTransitions}
	orderRepo := repository.NewOrderRepository()

	orders := handlers.NewOrderHandler(services.NewOrderService(s, orderRepo, policy))
	reports := handlers.NewReportHandler(services.NewReportService(s, orderRepo))
	categories := handlers.NewCategoryHandler(services.NewCategoryService(s, repository.NewCategoryRepository()))
	feedback := handlers.NewFeedbackHandler(services.NewFeedbackService(s, repository.NewFeedbackRepository(), orderRepo))
	auth := handlers.NewAuthHandler(cfg.JWTSecret, cfg.JWTTTL, cfg.AuthPasswordHash)
	public := handlers.NewPublicHandler(s, policy)

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", public.Welcome)
	r.GET("/health", public.Health)
	r.GET("/state-machine", public.GetStateMachineInfo)
	r.POST("/token", auth.Token)

	// ── Order management ───────────────────────────────────────────
	// Open to anyone; a valid token only tags status history entries.
	open := r.Group("/", middleware.OptionalAuth(cfg.JWTSecret))
	{
		open.POST("/orders", orders.CreateOrder)
		open.GET("/orders", orders.GetAllOrders)
		open.GET("/orders/:id", orders.GetOrder)
		open.PATCH("/orders/:id/status", orders.UpdateOrderStatus)
		open.DELETE("/orders/:id", orders.DeleteOrder)
		open.GET("/users/:id/orders", orders.GetUserOrders)

		open.POST("/feedback", feedback.Submit)
		open.GET("/menu/dishes/:id/feedback", feedback.ListForDish)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/", middleware.AuthRequired(cfg.JWTSecret))
	{
		authed.GET("/admin/reports/sales", reports.GetSalesReport)

		authed.GET("/categories", categories.List)
		authed.GET("/categories/:id", categories.Get)
		authed.POST("/categories", categories.Create)
		authed.PUT("/categories/:id", categories.Update)
		authed.DELETE("/categories/:id", categories.Delete)
	}
}
