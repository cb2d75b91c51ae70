package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

type SubmitReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,max=50"`
	Content string `json:"content" binding:"required"`
}

// HasPurchased reports whether any of the user's orders contains the product.
// Order status is irrelevant: an order item is a purchase.
func HasPurchased(db *gorm.DB, userID string, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// POST /products/:id/reviews
//
// The purchase gate runs before the form is even looked at; failing it is a
// permission error, not a validation error.
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		purchased, err := HasPurchased(db, userID, product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check purchase history"})
			return
		}
		if !purchased {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only review products you have purchased"})
			return
		}

		var input SubmitReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.ProductReview{
			ProductID: product.ID,
			UserID:    userID,
			Rating:    input.Rating,
			Title:     input.Title,
			Content:   input.Content,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}
