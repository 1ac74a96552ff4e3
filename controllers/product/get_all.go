package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

// GetProducts returns the whole catalog for the home page, newest first.
// Missing scalars are normalized so the feed never renders empty fields.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		for i := range products {
			products[i].Normalize()
		}
		c.JSON(http.StatusOK, products)
	}
}
