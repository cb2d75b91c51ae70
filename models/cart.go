package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionKey string     `gorm:"uniqueIndex;not null" json:"session_key"` // one cart per session
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem is one (product, size) line. The unique index on
// (cart_id, product_size_id) is what the merge-on-add upsert conflicts on.
type CartItem struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID        uint        `gorm:"index;uniqueIndex:idx_cart_line" json:"cart_id"`
	ProductID     uint        `json:"product_id"`
	Product       Product     `json:"product"`
	ProductSizeID uint        `gorm:"uniqueIndex:idx_cart_line" json:"product_size_id"`
	ProductSize   ProductSize `json:"product_size"`
	Quantity      int         `gorm:"not null" json:"quantity"`
	AddedAt       time.Time   `json:"added_at"`
}

// Subtotal sums price × quantity over the loaded items in exact decimal
// arithmetic. Items must be preloaded with their Product.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// TotalItems is the sum of line quantities, not the number of lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
