package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/usmanhaider-dev/storefront-api/controllers/auth"
	userControllers "github.com/usmanhaider-dev/storefront-api/controllers/user"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers login/register, logout and session introspection.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("", authControllers.LoginOrRegisterHandler(db))
		authGroup.DELETE("", authControllers.LogoutHandler())
		authGroup.GET("/session", authControllers.SessionHandler())
	}

	// External identity sync (no session required)
	r.POST("/users", userControllers.SyncUserHandler(db))
}
