package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OutfitPick struct {
	ProductID uint `json:"product_id"`
	SizeID    uint `json:"size_id"`
}

type AddOutfitInput struct {
	Products []OutfitPick `json:"products" binding:"required,min=1"`
}

// POST /cart/outfit
//
// Bulk-adds an outfit's (product, size) picks to the session cart, one unit
// each, through the same merge as single adds. Picks with a missing id are
// skipped; a pick whose size does not belong to its product rejects the
// request.
func AddOutfit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddOutfitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No products provided"})
			return
		}

		sessionKey := c.GetString("session_key")
		cart, err := GetOrCreateCart(db, sessionKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		added := 0
		for _, pick := range input.Products {
			if pick.ProductID == 0 || pick.SizeID == 0 {
				continue
			}
			if _, err := AddProduct(db, cart, pick.ProductID, pick.SizeID, 1); err != nil {
				if errors.Is(err, ErrSizeNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid outfit selection"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add outfit to cart"})
				return
			}
			added++
		}

		loaded, err := loadCart(db, sessionKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"cart_count":  loaded.TotalItems(),
			"added_count": added,
		})
	}
}
