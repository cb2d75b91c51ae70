package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSizeNotFound is returned when the size id does not belong to the product.
var ErrSizeNotFound = errors.New("product size not found")

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	SizeID    uint `json:"size_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetOrCreateCart returns the session's cart, creating it on first use.
func GetOrCreateCart(db *gorm.DB, sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where(models.Cart{SessionKey: sessionKey}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddProduct adds quantity of a (product, size) pair to the cart. The merge is
// a single ON CONFLICT upsert on the (cart_id, product_size_id) unique index,
// so concurrent double-submission converges to one line with summed quantity
// instead of racing a read-then-write.
func AddProduct(db *gorm.DB, cart *models.Cart, productID, sizeID uint, quantity int) (*models.CartItem, error) {
	var ps models.ProductSize
	if err := db.Where("id = ? AND product_id = ?", sizeID, productID).First(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSizeNotFound
		}
		return nil, err
	}

	now := time.Now()
	item := models.CartItem{
		CartID:        cart.ID,
		ProductID:     productID,
		ProductSizeID: ps.ID,
		Quantity:      quantity,
		AddedAt:       now,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_size_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			"added_at": now,
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	// Re-read: after a conflict merge the struct holds the inserted values,
	// not the summed row.
	var line models.CartItem
	if err := db.Preload("Product").Preload("ProductSize.Size").
		Where("cart_id = ? AND product_size_id = ?", cart.ID, ps.ID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// ClearCart removes every line item. Called by checkout after the provider
// handoff succeeds, and exposed as DELETE /cart.
func ClearCart(db *gorm.DB, cart *models.Cart) error {
	return db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

// loadCart fetches the session cart with items, products and sizes.
func loadCart(db *gorm.DB, sessionKey string) (*models.Cart, error) {
	cart, err := GetOrCreateCart(db, sessionKey)
	if err != nil {
		return nil, err
	}
	if err := db.Preload("Items.Product").Preload("Items.ProductSize.Size").
		First(cart, cart.ID).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := loadCart(db, c.GetString("session_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":       cart.Items,
			"subtotal":    cart.Subtotal(),
			"total_items": cart.TotalItems(),
		})
	}
}

// POST /cart/items
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := GetOrCreateCart(db, c.GetString("session_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		line, err := AddProduct(db, cart, input.ProductID, input.SizeID, input.Quantity)
		if err != nil {
			if errors.Is(err, ErrSizeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product size not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// PUT /cart/items/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := GetOrCreateCart(db, c.GetString("session_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ?", c.Param("id"), cart.ID).
			Updates(map[string]interface{}{"quantity": input.Quantity, "added_at": time.Now()})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /cart/items/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := GetOrCreateCart(db, c.GetString("session_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		result := db.Where("id = ? AND cart_id = ?", c.Param("id"), cart.ID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func Clear(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := GetOrCreateCart(db, c.GetString("session_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if err := ClearCart(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
