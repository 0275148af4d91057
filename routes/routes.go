package routes

import (
	"food-menu-api/handlers"
	"food-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, items *handlers.FoodItemHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/token", handlers.IssueToken)

		public.GET("/fooditems", items.List)
		public.GET("/fooditems/:id", items.Get)
	}

	// ── Menu management (admin token required) ─────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired())
	{
		admin.POST("/fooditems", items.Create)
		admin.PUT("/fooditems/:id", items.Update)
		admin.DELETE("/fooditems/:id", items.Delete)
	}
}
