package models

import "time"

// NewsletterSubscriber doubles as the discount-code registry: one subscriber,
// one code. Codes are matched case-insensitively and never expire.
type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	DiscountCode string    `gorm:"uniqueIndex;not null" json:"discount_code"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
