package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/velora-shop/storefront-api/controllers/order"
	paymentControllers "github.com/velora-shop/storefront-api/controllers/payment"
	"github.com/velora-shop/storefront-api/middleware"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout and the discount-validation query.
// Checkout needs both the login identity and the session cart.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB,
	providers map[models.PaymentProvider]paymentControllers.Provider) {

	orders := r.Group("/orders")
	{
		orders.POST("/checkout", middleware.ValidateToken, middleware.SessionKey,
			orderControllers.Checkout(db, providers)) // POST /orders/checkout
		orders.POST("/validate-discount",
			orderControllers.ValidateDiscountCode(db)) // POST /orders/validate-discount
	}
}
