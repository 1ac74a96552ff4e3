package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Stock       *int      `json:"stock"`
	Images      *[]string `json:"images"`
}

// UpdateProduct applies a partial update: only supplied fields are written.
// Supplying images rewrites the gallery and re-derives the main thumbnail.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Images != nil {
			images := *input.Images
			if len(images) > models.MaxGalleryImages {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Max 5 images allowed"})
				return
			}
			product.Images = models.ImageList(images)
			if len(images) > 0 {
				product.Image = images[0]
			} else {
				product.Image = models.PlaceholderImage
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
