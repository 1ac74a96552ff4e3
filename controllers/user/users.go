package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

type SyncUserRequest struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

// SyncUserHandler upserts a user coming from an external identity provider:
// creates the row on first sight, refreshes email/name afterwards.
func SyncUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ExternalID == "" || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		var user models.User
		err := db.Where("id = ?", req.ExternalID).First(&user).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:    req.ExternalID,
				Email: req.Email,
				Name:  req.Name,
				Role:  models.RoleUser,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "action": "created"})

		case err == nil:
			if err := db.Model(&user).Updates(models.User{Email: req.Email, Name: req.Name}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "action": "updated"})

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
	}
}

// GetAllUsers lists every user's public fields for the admin panel.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "role", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
