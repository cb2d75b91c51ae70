package orderControllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

// Subtotal stays raw: clients send it as a JSON string or a bare number, and
// either way the text feeds straight into ParseSubtotal.
type ValidateDiscountRequest struct {
	Code     string          `json:"code"`
	Subtotal json.RawMessage `json:"subtotal"`
}

// SubscriberCodeExists reports whether the code matches any newsletter
// subscriber, case-insensitively.
func SubscriberCodeExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&models.NewsletterSubscriber{}).
		Where("LOWER(discount_code) = LOWER(?)", strings.TrimSpace(code)).
		Count(&count).Error
	return count > 0, err
}

// ParseSubtotal turns a user-facing subtotal string into a decimal. Currency
// symbols and spaces are stripped; when both separators appear the last one
// wins as the decimal point ("1.234,56" and "1,234.56" both parse as 1234.56).
// Unparseable input degrades to zero, never to an error.
func ParseSubtotal(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	if lastComma > lastDot {
		s = strings.ReplaceAll(s, ".", "")
		i := strings.LastIndex(s, ",")
		s = strings.ReplaceAll(s[:i], ",", "") + "." + s[i+1:]
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// POST /orders/validate-discount
//
// Pure query against the current subtotal; mutates nothing.
func ValidateDiscountCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		// Blank codes are "no discount", no lookup needed.
		if strings.TrimSpace(req.Code) == "" {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		valid, err := SubscriberCodeExists(db, req.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate code"})
			return
		}
		if !valid {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		subtotal := ParseSubtotal(string(req.Subtotal))
		discountValue := subtotal.Mul(discountPercent).Div(decimal.NewFromInt(100)).Round(2)
		c.JSON(http.StatusOK, gin.H{"valid": true, "discount_value": discountValue})
	}
}
