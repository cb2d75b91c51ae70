package wishlistControllers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/velora-shop/storefront-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) (models.Product, models.ProductSize) {
	t.Helper()

	category := models.Category{Name: "Hats", Slug: models.Slugify(name + "-cat")}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	size := models.Size{Name: "One Size"}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("failed to seed size: %v", err)
	}
	product := models.Product{
		Name:       name,
		Slug:       models.Slugify(name),
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("15.00"),
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	ps := models.ProductSize{ProductID: product.ID, SizeID: size.ID, Stock: 3}
	if err := db.Create(&ps).Error; err != nil {
		t.Fatalf("failed to seed product size: %v", err)
	}
	return product, ps
}

func TestAddItemGetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	product, ps := seedProduct(t, db, "Beanie")

	item, created, err := AddItem(db, "user-1", product.ID, ps.ID)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if !created {
		t.Error("first AddItem() created = false, want true")
	}

	again, created, err := AddItem(db, "user-1", product.ID, ps.ID)
	if err != nil {
		t.Fatalf("second AddItem() error = %v", err)
	}
	if created {
		t.Error("duplicate AddItem() created = true, want false")
	}
	if again.ID != item.ID {
		t.Errorf("duplicate AddItem() returned item %d, want existing %d", again.ID, item.ID)
	}

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 1 {
		t.Errorf("wishlist row count = %d, want exactly 1", count)
	}
}

func TestAddItemInvalidSize(t *testing.T) {
	db := setupTestDB(t)
	product, _ := seedProduct(t, db, "Beanie")

	_, _, err := AddItem(db, "user-1", product.ID, 9999)
	if !errors.Is(err, ErrSizeNotFound) {
		t.Errorf("AddItem() error = %v, want ErrSizeNotFound", err)
	}
}

func TestRemoveItemOwnership(t *testing.T) {
	db := setupTestDB(t)
	product, ps := seedProduct(t, db, "Beanie")

	item, _, err := AddItem(db, "owner", product.ID, ps.ID)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	itemID := fmt.Sprint(item.ID)

	// A non-owner gets not-found and the row stays.
	if err := RemoveItem(db, itemID, "intruder"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("RemoveItem() by non-owner error = %v, want ErrRecordNotFound", err)
	}
	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("wishlist row count = %d, want 1 (row must survive)", count)
	}

	if err := RemoveItem(db, itemID, "owner"); err != nil {
		t.Fatalf("RemoveItem() by owner error = %v", err)
	}
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 0 {
		t.Errorf("wishlist row count = %d, want 0", count)
	}
}

func TestWishlistIsPerUser(t *testing.T) {
	db := setupTestDB(t)
	product, ps := seedProduct(t, db, "Beanie")

	if _, _, err := AddItem(db, "user-a", product.ID, ps.ID); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, created, err := AddItem(db, "user-b", product.ID, ps.ID); err != nil || !created {
		t.Fatalf("AddItem() for second user = (created %v, err %v), want created", created, err)
	}

	na, _ := count(db, "user-a")
	nb, _ := count(db, "user-b")
	if na != 1 || nb != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", na, nb)
	}
}
