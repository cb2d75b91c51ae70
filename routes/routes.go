package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	paymentControllers "github.com/velora-shop/storefront-api/controllers/payment"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the catalog, cart,
// checkout, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client,
	providers map[models.PaymentProvider]paymentControllers.Provider) {

	// Public catalog (no auth, no session)
	SetupCatalogRoutes(r, db, rdb)

	// Session-keyed cart + checkout
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, providers)

	// JWT-protected user surface (profile, wishlist, reviews, history)
	SetupUserRoutes(r, db)

	// API-key-protected catalog administration
	SetupAdminRoutes(r, db, rdb)
}
