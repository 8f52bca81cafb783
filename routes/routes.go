package routes

import (
	"smart-table-api/handlers"
	"smart-table-api/middleware"
	"smart-table-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, api *handlers.API) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", api.Register)
		public.POST("/auth/login", api.Login)

		// Menu & seating (no auth needed — diners are anonymous)
		public.GET("/menu", api.GetMenu)
		public.GET("/menu/:category", api.GetMenuCategory)
		public.GET("/tables", api.GetTables)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", api.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", api.GetProfile)
	}

	// ── Diner routes (keyed by table, no accounts) ─────────────────
	diner := r.Group("/api/tables/:table")
	{
		diner.GET("/cart", api.GetCart)
		diner.POST("/cart/items", api.AddCartItem)
		diner.DELETE("/cart/items/:name", api.RemoveCartItem)
		diner.POST("/orders", api.PlaceOrder)
		diner.GET("/orders", api.GetMyOrders)
		diner.PUT("/orders/:id/cancel", api.CancelOrder)
		diner.POST("/feedback", api.LeaveFeedback)
		diner.GET("/events", api.DinerFeed)
	}

	// ── Staff routes (kitchen view) ────────────────────────────────
	staff := r.Group("/api/staff")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
	{
		staff.GET("/orders", api.GetOrders)
		staff.GET("/orders/:id", api.GetOrderDetail)
		staff.PUT("/orders/:id/status", api.UpdateOrderStatus)
	}

	// Staff event feed authenticates via query token, outside the
	// header-based middleware
	r.GET("/api/staff/events", api.StaffFeed)

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.DELETE("/orders/:id", api.AdminDeleteOrder)
		admin.GET("/feedback", api.AdminListFeedback)
		admin.GET("/payments", api.AdminListPayments)
	}
}
