package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// GET /catalog/categories — root categories with one level of subcategories.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Subcategories").
			Where("parent_id IS NULL").
			Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /catalog/sizes
func GetSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sizes []models.Size
		if err := db.Find(&sizes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sizes"})
			return
		}
		c.JSON(http.StatusOK, sizes)
	}
}
