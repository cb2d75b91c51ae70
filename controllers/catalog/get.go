package catalogControllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

type productDetail struct {
	models.Product
	RelatedProducts []models.Product `json:"related_products"`
}

// GET /catalog/products/:slug
func GetProductBySlug(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		slug := c.Param("slug")
		cacheKey := "catalog:product:" + slug

		if rdb != nil {
			if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
				var detail productDetail
				if json.Unmarshal([]byte(cached), &detail) == nil {
					c.JSON(http.StatusOK, detail)
					return
				}
			}
		}

		var product models.Product
		err := db.Preload("Category").
			Preload("Sizes.Size").
			Preload("Images").
			Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }).
			Where("slug = ?", slug).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var related []models.Product
		if err := db.Where("category_id = ? AND id <> ?", product.CategoryID, product.ID).
			Limit(4).Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
			return
		}

		detail := productDetail{Product: product, RelatedProducts: related}
		if rdb != nil {
			if payload, err := json.Marshal(detail); err == nil {
				go rdb.Set(context.Background(), cacheKey, payload, productCacheTTL)
			}
		}
		c.JSON(http.StatusOK, detail)
	}
}
