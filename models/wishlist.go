package models

import "time"

// WishlistItem is unique per (user, product, size); adding a duplicate is a
// no-op reported as "already present", never an error.
type WishlistItem struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string      `gorm:"index;uniqueIndex:idx_wishlist_entry;not null" json:"user_id"`
	ProductID     uint        `gorm:"uniqueIndex:idx_wishlist_entry" json:"product_id"`
	Product       Product     `json:"product"`
	ProductSizeID uint        `gorm:"uniqueIndex:idx_wishlist_entry" json:"product_size_id"`
	ProductSize   ProductSize `json:"product_size"`
	CreatedAt     time.Time   `json:"created_at"`
}
