package settingsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

// Site settings live in a single row with id = 1.
const settingsRowID = 1

type UpdateSettingsRequest struct {
	BrandName        string `json:"brand_name"`
	BrandDescription string `json:"brand_description"`
	EmailAddress     string `json:"email_address"`
	HelplineNumber   string `json:"helpline_number"`
	WhatsappNumber   string `json:"whatsapp_number"`
	FacebookURL      string `json:"facebook_url"`
	InstagramURL     string `json:"instagram_url"`
	TiktokURL        string `json:"tiktok_url"`
	SnapchatURL      string `json:"snapchat_url"`
}

// GetSettingsHandler returns the storefront settings; an empty object when
// the row has never been written.
func GetSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		err := db.First(&settings, settingsRowID).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettingsHandler overwrites the settings row; absent fields become
// empty strings, matching a full form submit.
func UpdateSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		settings := models.SiteSettings{
			ID:               settingsRowID,
			BrandName:        req.BrandName,
			BrandDescription: req.BrandDescription,
			EmailAddress:     req.EmailAddress,
			HelplineNumber:   req.HelplineNumber,
			WhatsappNumber:   req.WhatsappNumber,
			FacebookURL:      req.FacebookURL,
			InstagramURL:     req.InstagramURL,
			TiktokURL:        req.TiktokURL,
			SnapchatURL:      req.SnapchatURL,
		}
		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
