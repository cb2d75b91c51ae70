package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	catalogControllers "github.com/velora-shop/storefront-api/controllers/catalog"
	newsletterControllers "github.com/velora-shop/storefront-api/controllers/newsletter"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public read-only storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/products", catalogControllers.GetProducts(db, rdb))
		catalog.GET("/products/:slug", catalogControllers.GetProductBySlug(db, rdb))
		catalog.GET("/categories", catalogControllers.GetCategories(db))
		catalog.GET("/sizes", catalogControllers.GetSizes(db))
		catalog.GET("/outfits", catalogControllers.GetOutfits(db))
		catalog.GET("/outfits/:id", catalogControllers.GetOutfit(db))
	}

	r.POST("/newsletter/subscribe", newsletterControllers.Subscribe(db))
}
