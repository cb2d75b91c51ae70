package catalogControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

type CreateCategoryInput struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"parent_id"`
}

type CreateSizeInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Slug        string          `json:"slug"`
	CategoryID  uint            `json:"category_id" binding:"required"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	MainImage   string          `json:"main_image"`
	Images      []string        `json:"images"`
	Sizes       []struct {
		SizeID uint `json:"size_id" binding:"required"`
		Stock  int  `json:"stock" binding:"min=0"`
	} `json:"sizes" binding:"dive"`
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ParentID != nil {
			var parent models.Category
			if err := db.First(&parent, *input.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
		}

		slug := input.Slug
		if slug == "" {
			slug = models.Slugify(input.Name)
		}
		category := models.Category{Name: input.Name, Slug: slug, ParentID: input.ParentID}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create category (slug must be unique)"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// POST /admin/sizes
func CreateSize(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateSizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		size := models.Size{Name: input.Name}
		if err := db.Create(&size).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create size"})
			return
		}
		c.JSON(http.StatusCreated, size)
	}
}

// POST /admin/products — creates the product with its per-size stock rows and
// gallery images in one transaction, then drops the listing cache.
func CreateProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = models.Slugify(input.Name)
		}

		product := models.Product{
			Name:        input.Name,
			Slug:        slug,
			CategoryID:  input.CategoryID,
			Color:       input.Color,
			Price:       input.Price,
			Description: input.Description,
			MainImage:   input.MainImage,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		for _, s := range input.Sizes {
			product.Sizes = append(product.Sizes, models.ProductSize{SizeID: s.SizeID, Stock: s.Stock})
		}
		for _, img := range input.Images {
			product.Images = append(product.Images, models.ProductImage{Image: img})
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&product).Error
		}); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create product (slug must be unique)"})
			return
		}

		if rdb != nil {
			go rdb.Del(context.Background(), allProductsCacheKey)
		}
		c.JSON(http.StatusCreated, product)
	}
}
