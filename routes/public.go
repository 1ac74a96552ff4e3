package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/usmanhaider-dev/storefront-api/controllers/product"
	settingsControllers "github.com/usmanhaider-dev/storefront-api/controllers/settings"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront browsing endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/settings", settingsControllers.GetSettingsHandler(db))
}
