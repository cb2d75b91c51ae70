package models

import "time"

type OutfitGender string

const (
	OutfitGenderMale   OutfitGender = "male"
	OutfitGenderFemale OutfitGender = "female"
)

// Outfit is a curated bundle of products ("get the look").
type Outfit struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string        `gorm:"not null" json:"title"`
	Gender    OutfitGender  `gorm:"type:varchar(10)" json:"gender"`
	Image     string        `json:"image"`
	Items     []OutfitItem  `gorm:"foreignKey:OutfitID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Images    []OutfitImage `gorm:"foreignKey:OutfitID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type OutfitItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OutfitID  uint    `gorm:"index" json:"outfit_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`
}

type OutfitImage struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OutfitID uint   `gorm:"index" json:"outfit_id"`
	Image    string `gorm:"not null" json:"image"`
}
