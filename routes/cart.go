package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/velora-shop/storefront-api/controllers/cart"
	"github.com/velora-shop/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the session-keyed cart endpoints. No login is
// required; the session middleware mints a key for first-time visitors.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.SessionKey)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddItem(db))
		cart.POST("/outfit", cartControllers.AddOutfit(db))
		cart.PUT("/items/:id", cartControllers.UpdateItem(db))
		cart.DELETE("/items/:id", cartControllers.DeleteItem(db))
		cart.DELETE("", cartControllers.Clear(db))
	}
}
