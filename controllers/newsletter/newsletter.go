package newsletterControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// NewDiscountCode mints a subscriber's personal code. Short and uppercase so
// it survives being typed from a promo email.
func NewDiscountCode() string {
	return "WELCOME10-" + strings.ToUpper(uuid.NewString()[:8])
}

// POST /newsletter/subscribe
//
// Subscribing twice with the same email returns the existing code instead of
// erroring; the registry stays one code per subscriber.
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		subscriber := models.NewsletterSubscriber{
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			DiscountCode: NewDiscountCode(),
			SubscribedAt: time.Now(),
		}
		result := db.Where(models.NewsletterSubscriber{Email: subscriber.Email}).
			Attrs(models.NewsletterSubscriber{
				DiscountCode: subscriber.DiscountCode,
				SubscribedAt: subscriber.SubscribedAt,
			}).
			FirstOrCreate(&subscriber)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}

		status := http.StatusOK
		if result.RowsAffected > 0 {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{"email": subscriber.Email, "discount_code": subscriber.DiscountCode})
	}
}
