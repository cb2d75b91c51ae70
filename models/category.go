package models

type Category struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	ParentID      *uint      `gorm:"index" json:"parent_id,omitempty"` // nil for root categories
	Subcategories []Category `gorm:"foreignKey:ParentID" json:"subcategories,omitempty"`
}

// Size is global reference data shared across all products.
type Size struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// ProductSize carries the per-size stock count for a product. Stock is
// informational display data; nothing in the checkout path reserves or
// decrements it.
type ProductSize struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"index;uniqueIndex:idx_product_size" json:"product_id"`
	SizeID    uint `gorm:"uniqueIndex:idx_product_size" json:"size_id"`
	Size      Size `json:"size"`
	Stock     int  `gorm:"not null;default:0" json:"stock"`
}
