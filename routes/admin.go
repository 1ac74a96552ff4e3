package routes

import (
	"github.com/gin-gonic/gin"
	customerControllers "github.com/usmanhaider-dev/storefront-api/controllers/customer"
	productcontroller "github.com/usmanhaider-dev/storefront-api/controllers/product"
	settingsControllers "github.com/usmanhaider-dev/storefront-api/controllers/settings"
	userControllers "github.com/usmanhaider-dev/storefront-api/controllers/user"
	"github.com/usmanhaider-dev/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Customers & Users ───────────
		adminGroup.GET("/customers", customerControllers.GetCustomersHandler(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Site Settings ───────────
		adminGroup.POST("/settings", settingsControllers.UpdateSettingsHandler(db))
	}
}
