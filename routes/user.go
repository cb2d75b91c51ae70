package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/velora-shop/storefront-api/controllers/order"
	reviewControllers "github.com/velora-shop/storefront-api/controllers/review"
	userControllers "github.com/velora-shop/storefront-api/controllers/user"
	wishlistControllers "github.com/velora-shop/storefront-api/controllers/wishlist"
	"github.com/velora-shop/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers everything that needs a logged-in user.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	user := r.Group("/user")
	user.Use(middleware.ValidateToken)
	{
		user.GET("/profile", userControllers.GetProfile(db))
		user.PUT("/profile", userControllers.UpdateProfile(db))
		user.GET("/orders", orderControllers.GetUserOrders(db))
	}

	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.ValidateToken)
	{
		wishlist.GET("", wishlistControllers.List(db))
		wishlist.GET("/count", wishlistControllers.Count(db))
		wishlist.POST("/items", wishlistControllers.Add(db))
		wishlist.DELETE("/items/:id", wishlistControllers.Remove(db))
		wishlist.DELETE("", wishlistControllers.Clear(db))
	}

	// Purchase-gated review submission
	r.POST("/products/:id/reviews", middleware.ValidateToken, reviewControllers.SubmitReview(db))
}
