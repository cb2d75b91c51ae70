package models

import "time"

// ProductReview is purchase-gated: submission requires a historical order
// item for the product. A user may review the same product more than once.
type ProductReview struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Title     string    `json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
