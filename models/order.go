package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentProvider string

const (
	PaymentProviderStripe  PaymentProvider = "stripe"
	PaymentProviderHeleket PaymentProvider = "heleket"
)

// Order is an immutable snapshot taken at checkout. There is no update path:
// once created, shipping fields and totals never change.
type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Company         string          `json:"company"`
	Address1        string          `json:"address1"`
	Address2        string          `json:"address2"`
	City            string          `json:"city"`
	Country         string          `json:"country"`
	Province        string          `json:"province"`
	PostalCode      string          `json:"postal_code"`
	Phone           string          `json:"phone"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Discount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	PaymentProvider PaymentProvider `gorm:"type:varchar(20)" json:"payment_provider"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem copies the product price at purchase time; later catalog price
// changes must never alter historical orders.
type OrderItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint            `gorm:"index" json:"order_id"`
	ProductID     uint            `gorm:"index" json:"product_id"`
	Product       Product         `json:"product"`
	ProductSizeID uint            `json:"product_size_id"`
	ProductSize   ProductSize     `json:"product_size"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
