package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

// GetAllCategories returns the distinct non-empty product categories,
// ascending. Categories are free strings on products, not a separate table.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Where("category <> ''").
			Distinct("category").
			Order("category ASC").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}
