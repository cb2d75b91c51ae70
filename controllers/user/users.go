package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// Pointer fields make the update partial: an omitted field keeps its stored
// value, an explicit empty string clears it.
type UpdateProfileInput struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Country    *string `json:"country"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postal_code"`
}

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/profile
//
// Upserts so a first profile save works even when the auth service has not
// provisioned a row here yet.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userID := c.GetString("user_id")
		var user models.User
		if err := db.Where(models.User{ID: userID}).FirstOrCreate(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Country != nil {
			user.Country = *input.Country
		}
		if input.City != nil {
			user.City = *input.City
		}
		if input.Street != nil {
			user.Street = *input.Street
		}
		if input.PostalCode != nil {
			user.PostalCode = *input.PostalCode
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
