package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/usmanhaider-dev/storefront-api/controllers/order"
	"github.com/usmanhaider-dev/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Place a new order (guest or logged-in)
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Admin: filtered listing, status transitions, live feed
		orders.GET("", middleware.RequireAdmin, orderControllers.GetOrdersHandler(db))
		orders.PUT("", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
		orders.GET("/ws", middleware.RequireAdmin, orderControllers.OrderFeedHandler)
	}
}
