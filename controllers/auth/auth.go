package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/usmanhaider-dev/storefront-api/middleware"
	"github.com/usmanhaider-dev/storefront-api/models"
	"github.com/usmanhaider-dev/storefront-api/session"
	"gorm.io/gorm"
)

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginOrRegisterHandler signs a user in, auto-registering unknown emails.
// Both paths end with a session cookie on the response.
func LoginOrRegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error

		switch {
		case err == nil:
			// Known email: login
			if !session.CheckPassword(req.Password, user.Password) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
				return
			}
			if !issueSession(c, user) {
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in successfully"})

		case err == gorm.ErrRecordNotFound:
			// Unknown email: register
			hash, hashErr := session.HashPassword(req.Password)
			if hashErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			name := req.Name
			if name == "" {
				name = "New User"
			}
			user = models.User{
				ID:       "user_" + uuid.NewString(),
				Email:    req.Email,
				Name:     name,
				Password: hash,
				Role:     models.RoleUser,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			if !issueSession(c, user) {
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account created successfully"})

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
	}
}

func issueSession(c *gin.Context, user models.User) bool {
	token, err := session.Create(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return false
	}
	session.SetCookie(c, token)
	return true
}

// LogoutHandler deletes the session cookie.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session.ClearCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// SessionHandler reports who the caller is; guests get user: null.
func SessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.Claims(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
			"role":  claims.Role,
		}})
	}
}
