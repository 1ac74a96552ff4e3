package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public storefront,
// auth, order and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Session claims are loaded once here; RequireAdmin gates the admin group.
	r.Use(middleware.LoadSession)

	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupAdminRoutes(r, db)
}
