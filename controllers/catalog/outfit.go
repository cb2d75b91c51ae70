package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

type outfitProduct struct {
	Product models.Product       `json:"product"`
	Sizes   []models.ProductSize `json:"sizes"`
}

// GET /catalog/outfits?gender=&limit=
func GetOutfits(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Outfit{}).Preload("Items.Product").Preload("Images")

		if gender := c.Query("gender"); gender != "" {
			if gender != string(models.OutfitGenderMale) && gender != string(models.OutfitGenderFemale) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gender"})
				return
			}
			query = query.Where("gender = ?", gender)
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			query = query.Limit(limit)
		}

		var outfits []models.Outfit
		if err := query.Order("created_at DESC").Find(&outfits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outfits"})
			return
		}
		c.JSON(http.StatusOK, outfits)
	}
}

// GET /catalog/outfits/:id — the outfit plus, for each bundled product, the
// sizes it can be added to the cart in.
func GetOutfit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var outfit models.Outfit
		err := db.Preload("Items.Product").Preload("Images").
			First(&outfit, "id = ?", c.Param("id")).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Outfit not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outfit"})
			return
		}

		products := make([]outfitProduct, 0, len(outfit.Items))
		for _, item := range outfit.Items {
			var sizes []models.ProductSize
			if err := db.Preload("Size").
				Where("product_id = ?", item.ProductID).
				Find(&sizes).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outfit sizes"})
				return
			}
			products = append(products, outfitProduct{Product: item.Product, Sizes: sizes})
		}

		c.JSON(http.StatusOK, gin.H{"outfit": outfit, "products": products})
	}
}
