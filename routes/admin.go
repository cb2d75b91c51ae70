package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	catalogControllers "github.com/velora-shop/storefront-api/controllers/catalog"
	"github.com/velora-shop/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected catalog mutation endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/categories", catalogControllers.CreateCategory(db))
		admin.POST("/sizes", catalogControllers.CreateSize(db))
		admin.POST("/products", catalogControllers.CreateProduct(db, rdb))
	}
}
