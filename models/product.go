package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID  uint            `gorm:"index;not null" json:"category_id"`
	Category    Category        `json:"category"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	MainImage   string          `json:"main_image"`
	Sizes       []ProductSize   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes,omitempty"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews     []ProductReview `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ProductImage is a gallery image beyond the main one, ordered by insertion.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
}
