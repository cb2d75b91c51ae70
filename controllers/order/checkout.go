package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	cartControllers "github.com/velora-shop/storefront-api/controllers/cart"
	paymentControllers "github.com/velora-shop/storefront-api/controllers/payment"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidProvider = errors.New("invalid payment provider")
	ErrPaymentFailed   = errors.New("payment provider failed")
)

// discountPercent is the flat reduction granted by any valid subscriber code.
var discountPercent = decimal.NewFromInt(10)

type CheckoutRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Company         string `json:"company"`
	Address1        string `json:"address1" binding:"required"`
	Address2        string `json:"address2"`
	City            string `json:"city" binding:"required"`
	Country         string `json:"country" binding:"required"`
	Province        string `json:"province"`
	PostalCode      string `json:"postal_code" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	DiscountCode    string `json:"discount_code"`
	PaymentProvider string `json:"payment_provider" binding:"required"`
}

// PlaceOrder converts the session cart into an immutable order and hands it to
// the chosen payment provider. Ordering matters: the provider name and the
// cart are validated before any row is written, the order and its items are
// created in one transaction, and a provider failure deletes the order again
// so no unpaid orphan persists.
func PlaceOrder(db *gorm.DB, providers map[models.PaymentProvider]paymentControllers.Provider,
	userID, sessionKey string, req CheckoutRequest) (*models.Order, string, error) {

	provider, ok := providers[models.PaymentProvider(req.PaymentProvider)]
	if !ok {
		return nil, "", ErrInvalidProvider
	}

	cart, err := cartControllers.GetOrCreateCart(db, sessionKey)
	if err != nil {
		return nil, "", err
	}
	if err := db.Preload("Items.Product").First(cart, cart.ID).Error; err != nil {
		return nil, "", err
	}
	if cart.TotalItems() == 0 {
		return nil, "", ErrEmptyCart
	}

	subtotal := cart.Subtotal()

	discountValue := decimal.Zero
	if req.DiscountCode != "" {
		exists, err := SubscriberCodeExists(db, req.DiscountCode)
		if err != nil {
			return nil, "", err
		}
		if exists {
			discountValue = subtotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
		}
	}
	totalPrice := subtotal.Sub(discountValue)

	email := req.Email
	if email == "" {
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			email = user.Email
		}
	}

	order := models.Order{
		OrderRef:        time.Now().Format("20060102150405") + "-" + uuid.NewString(),
		UserID:          userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           email,
		Company:         req.Company,
		Address1:        req.Address1,
		Address2:        req.Address2,
		City:            req.City,
		Country:         req.Country,
		Province:        req.Province,
		PostalCode:      req.PostalCode,
		Phone:           req.Phone,
		TotalPrice:      totalPrice,
		Discount:        discountValue,
		PaymentProvider: models.PaymentProvider(req.PaymentProvider),
		CreatedAt:       time.Now(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     item.ProductID,
			ProductSizeID: item.ProductSizeID,
			Quantity:      item.Quantity,
			Price:         item.Product.Price, // price-at-purchase copy
		})
	}

	// Order and items are one atomic unit.
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, "", err
	}

	redirectURL, err := provider.CreateCheckoutSession(&order)
	if err != nil {
		log.Printf("❌ Payment provider %s failed for order %s: %v", order.PaymentProvider, order.OrderRef, err)
		if rbErr := rollbackOrder(db, order.ID); rbErr != nil {
			log.Printf("❌ Failed to roll back order %d: %v", order.ID, rbErr)
		}
		return nil, "", errors.Join(ErrPaymentFailed, err)
	}

	if err := cartControllers.ClearCart(db, cart); err != nil {
		log.Printf("⚠️ Failed to clear cart %d after checkout: %v", cart.ID, err)
	}
	return &order, redirectURL, nil
}

// rollbackOrder deletes a speculatively created order and its items.
func rollbackOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
}

// POST /orders/checkout
func Checkout(db *gorm.DB, providers map[models.PaymentProvider]paymentControllers.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, redirectURL, err := PlaceOrder(db, providers, c.GetString("user_id"), c.GetString("session_key"), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidProvider):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid payment provider"})
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.Is(err, ErrPaymentFailed):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Payment processing error, please try again"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_ref":    order.OrderRef,
			"total_price":  order.TotalPrice,
			"discount":     order.Discount,
			"redirect_url": redirectURL,
		})
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items.Product").Preload("Items.ProductSize.Size").
			Where("user_id = ?", c.GetString("user_id")).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
