package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

// CreateProduct creates a new product with an up-to-5-image gallery. The
// first gallery entry becomes the main thumbnail; initial rating is always 0.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Name == "" || req.Price == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Price are required"})
			return
		}
		if len(req.Images) > models.MaxGalleryImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 5 images allowed"})
			return
		}

		mainImage := models.PlaceholderImage
		if len(req.Images) > 0 {
			mainImage = req.Images[0]
		}

		product := models.Product{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Image:       mainImage,
			Images:      models.ImageList(req.Images),
			Description: req.Description,
			Stock:       req.Stock,
			Rating:      0,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product created", "id": product.ID})
	}
}
