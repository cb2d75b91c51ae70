package orderControllers

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	cartControllers "github.com/velora-shop/storefront-api/controllers/cart"
	paymentControllers "github.com/velora-shop/storefront-api/controllers/payment"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubProvider satisfies payment.Provider without leaving the process.
type stubProvider struct {
	url string
	err error
}

func (p *stubProvider) CreateCheckoutSession(*models.Order) (string, error) {
	return p.url, p.err
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{}, &models.Size{}, &models.Product{}, &models.ProductSize{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.NewsletterSubscriber{}, &models.User{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testProviders(err error) map[models.PaymentProvider]paymentControllers.Provider {
	return map[models.PaymentProvider]paymentControllers.Provider{
		models.PaymentProviderStripe: &stubProvider{url: "https://pay.example/session", err: err},
	}
}

func checkoutRequest(provider, code string) CheckoutRequest {
	return CheckoutRequest{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "ann@example.com",
		Address1:        "1 Main St",
		City:            "Sofia",
		Country:         "BG",
		PostalCode:      "1000",
		Phone:           "+359000000",
		DiscountCode:    code,
		PaymentProvider: provider,
	}
}

// seedCart puts quantity of a product at the given price into a session cart.
func seedCart(t *testing.T, db *gorm.DB, sessionKey, price string, quantity int) models.Product {
	t.Helper()

	category := models.Category{Name: "Dresses", Slug: "dresses-" + sessionKey}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	size := models.Size{Name: "M"}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("failed to seed size: %v", err)
	}
	product := models.Product{
		Name:       "Dress " + sessionKey,
		Slug:       "dress-" + sessionKey,
		CategoryID: category.ID,
		Price:      decimal.RequireFromString(price),
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	ps := models.ProductSize{ProductID: product.ID, SizeID: size.ID, Stock: 10}
	if err := db.Create(&ps).Error; err != nil {
		t.Fatalf("failed to seed product size: %v", err)
	}

	cart, err := cartControllers.GetOrCreateCart(db, sessionKey)
	if err != nil {
		t.Fatalf("GetOrCreateCart() error = %v", err)
	}
	if _, err := cartControllers.AddProduct(db, cart, product.ID, ps.ID, quantity); err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	return product
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count orders: %v", err)
	}
	return n
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := PlaceOrder(db, testProviders(nil), "user-1", "empty-session", checkoutRequest("stripe", ""))
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("PlaceOrder() error = %v, want ErrEmptyCart", err)
	}
	if n := orderCount(t, db); n != 0 {
		t.Errorf("order count = %d, want 0", n)
	}
}

func TestPlaceOrderInvalidProvider(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "s1", "50.00", 1)

	for _, name := range []string{"", "paypal", "STRIPE"} {
		_, _, err := PlaceOrder(db, testProviders(nil), "user-1", "s1", checkoutRequest(name, ""))
		if !errors.Is(err, ErrInvalidProvider) {
			t.Errorf("PlaceOrder(provider=%q) error = %v, want ErrInvalidProvider", name, err)
		}
	}
	if n := orderCount(t, db); n != 0 {
		t.Errorf("order count = %d, want 0 (validate before create)", n)
	}
}

func TestPlaceOrderDiscount(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&models.NewsletterSubscriber{
		Email:        "sub@example.com",
		DiscountCode: "WELCOME10-ABCD1234",
		SubscribedAt: time.Now(),
	}).Error; err != nil {
		t.Fatalf("failed to seed subscriber: %v", err)
	}

	tests := []struct {
		name         string
		code         string
		wantDiscount string
		wantTotal    string
	}{
		{name: "valid code", code: "WELCOME10-ABCD1234", wantDiscount: "10.00", wantTotal: "90.00"},
		{name: "case-insensitive match", code: "welcome10-abcd1234", wantDiscount: "10.00", wantTotal: "90.00"},
		{name: "unknown code", code: "NOPE", wantDiscount: "0.00", wantTotal: "100.00"},
		{name: "blank code", code: "", wantDiscount: "0.00", wantTotal: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := "discount-" + tt.name
			seedCart(t, db, session, "100.00", 1)

			order, redirectURL, err := PlaceOrder(db, testProviders(nil), "user-1", session, checkoutRequest("stripe", tt.code))
			if err != nil {
				t.Fatalf("PlaceOrder() error = %v", err)
			}
			if redirectURL != "https://pay.example/session" {
				t.Errorf("redirect URL = %q", redirectURL)
			}
			if !order.Discount.Equal(decimal.RequireFromString(tt.wantDiscount)) {
				t.Errorf("discount = %s, want %s", order.Discount, tt.wantDiscount)
			}
			if !order.TotalPrice.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("total = %s, want %s", order.TotalPrice, tt.wantTotal)
			}
		})
	}
}

func TestPlaceOrderProviderFailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "s-fail", "40.00", 2)

	_, _, err := PlaceOrder(db, testProviders(errors.New("gateway down")), "user-1", "s-fail", checkoutRequest("stripe", ""))
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("PlaceOrder() error = %v, want ErrPaymentFailed", err)
	}

	if n := orderCount(t, db); n != 0 {
		t.Errorf("order count = %d, want 0 (no orphan orders)", n)
	}
	var items int64
	db.Model(&models.OrderItem{}).Count(&items)
	if items != 0 {
		t.Errorf("order item count = %d, want 0", items)
	}

	// The cart survives a failed checkout so the user can resubmit.
	cart, _ := cartControllers.GetOrCreateCart(db, "s-fail")
	db.Preload("Items").First(cart, cart.ID)
	if cart.TotalItems() != 2 {
		t.Errorf("cart items after failed checkout = %d, want 2", cart.TotalItems())
	}
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "s-ok", "25.50", 2)

	order, _, err := PlaceOrder(db, testProviders(nil), "user-1", "s-ok", checkoutRequest("stripe", ""))
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if !order.TotalPrice.Equal(decimal.RequireFromString("51.00")) {
		t.Errorf("total = %s, want 51.00", order.TotalPrice)
	}

	cart, _ := cartControllers.GetOrCreateCart(db, "s-ok")
	db.Preload("Items").First(cart, cart.ID)
	if cart.TotalItems() != 0 {
		t.Errorf("cart items after checkout = %d, want 0", cart.TotalItems())
	}
}

func TestPriceAtPurchaseIsImmutable(t *testing.T) {
	db := setupTestDB(t)
	product := seedCart(t, db, "s-price", "19.99", 3)

	order, _, err := PlaceOrder(db, testProviders(nil), "user-1", "s-price", checkoutRequest("stripe", ""))
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if !order.TotalPrice.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("total = %s, want exactly 59.97", order.TotalPrice)
	}

	// A later catalog price change must not leak into the historical order.
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("99.99")).Error; err != nil {
		t.Fatalf("failed to reprice product: %v", err)
	}

	var stored models.Order
	if err := db.Preload("Items").First(&stored, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if !stored.TotalPrice.Equal(decimal.RequireFromString("59.97")) {
		t.Errorf("stored total = %s, want 59.97", stored.TotalPrice)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("stored order has %d items, want 1", len(stored.Items))
	}
	if !stored.Items[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("item price-at-purchase = %s, want 19.99", stored.Items[0].Price)
	}
}
