package models

import "time"

// User mirrors the identity supplied by the auth collaborator; the ID is the
// token subject. Token issuance lives outside this service.
type User struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
}
