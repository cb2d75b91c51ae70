package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// ErrSizeNotFound is returned when the size id does not belong to the product.
var ErrSizeNotFound = errors.New("product size not found")

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	SizeID    uint `json:"size_id" binding:"required"`
}

// AddItem has get-or-create semantics on the (user, product, size) triple.
// The created flag lets callers tell "added" from "already present".
func AddItem(db *gorm.DB, userID string, productID, sizeID uint) (*models.WishlistItem, bool, error) {
	var ps models.ProductSize
	if err := db.Where("id = ? AND product_id = ?", sizeID, productID).First(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrSizeNotFound
		}
		return nil, false, err
	}

	item := models.WishlistItem{
		UserID:        userID,
		ProductID:     productID,
		ProductSizeID: ps.ID,
	}
	result := db.Where(models.WishlistItem{
		UserID:        userID,
		ProductID:     productID,
		ProductSizeID: ps.ID,
	}).FirstOrCreate(&item)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &item, result.RowsAffected > 0, nil
}

// RemoveItem deletes the item only when it belongs to the user; a cross-user
// attempt reads as not-found, never as silent success.
func RemoveItem(db *gorm.DB, itemID, userID string) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func count(db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// POST /wishlist/items
func Add(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userID := c.GetString("user_id")
		item, created, err := AddItem(db, userID, input.ProductID, input.SizeID)
		if err != nil {
			if errors.Is(err, ErrSizeNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		n, err := count(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"created": created,
			"count":   n,
			"item":    item,
		})
	}
}

// DELETE /wishlist/items/:id
func Remove(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if err := RemoveItem(db, c.Param("id"), userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove wishlist item"})
			return
		}

		n, err := count(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": n})
	}
}

// GET /wishlist
func List(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.WishlistItem
		if err := db.Preload("Product").Preload("ProductSize.Size").
			Where("user_id = ?", c.GetString("user_id")).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// GET /wishlist/count
func Count(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := count(db, c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}

// DELETE /wishlist
func Clear(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("user_id = ?", c.GetString("user_id")).
			Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": 0})
	}
}
