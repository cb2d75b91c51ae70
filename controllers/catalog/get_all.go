package catalogControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

const (
	allProductsCacheKey = "catalog:products"
	productCacheTTL     = 5 * time.Minute
)

// GET /catalog/products
//
// Filters: category (slug), q (name/description contains), color (exact,
// case-insensitive), min_price, max_price, size (size name). Only the
// unfiltered listing goes through the cache.
func GetProducts(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		categorySlug := c.Query("category")
		search := c.Query("q")
		color := c.Query("color")
		minPrice := c.Query("min_price")
		maxPrice := c.Query("max_price")
		sizeName := c.Query("size")
		filtered := categorySlug != "" || search != "" || color != "" ||
			minPrice != "" || maxPrice != "" || sizeName != ""

		if !filtered && rdb != nil {
			if cached, err := rdb.Get(ctx, allProductsCacheKey).Result(); err == nil {
				var products []models.Product
				if json.Unmarshal([]byte(cached), &products) == nil {
					c.JSON(http.StatusOK, products)
					return
				}
			}
		}

		query := db.Model(&models.Product{}).Preload("Category").Preload("Sizes.Size")

		if categorySlug != "" {
			var category models.Category
			if err := db.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			query = query.Where("category_id = ?", category.ID)
		}
		if search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
		}
		if color != "" {
			query = query.Where("LOWER(color) = LOWER(?)", color)
		}
		if minPrice != "" {
			if min, err := decimal.NewFromString(minPrice); err == nil {
				query = query.Where("price >= ?", min)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPrice != "" {
			if max, err := decimal.NewFromString(maxPrice); err == nil {
				query = query.Where("price <= ?", max)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}
		if sizeName != "" {
			query = query.
				Joins("JOIN product_sizes ps ON ps.product_id = products.id").
				Joins("JOIN sizes ON sizes.id = ps.size_id").
				Where("sizes.name = ?", sizeName).
				Distinct("products.*")
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if !filtered && rdb != nil {
			if payload, err := json.Marshal(products); err == nil {
				go rdb.Set(context.Background(), allProductsCacheKey, payload, productCacheTTL)
			}
		}
		c.JSON(http.StatusOK, products)
	}
}
