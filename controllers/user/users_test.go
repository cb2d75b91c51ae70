package userControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func profileRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	identify := func(c *gin.Context) { c.Set("user_id", userID) }
	r.GET("/user/profile", identify, GetProfile(db))
	r.PUT("/user/profile", identify, UpdateProfile(db))
	return r
}

func putProfile(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateProfilePartial(t *testing.T) {
	db := setupTestDB(t)
	r := profileRouter(db, "user-1")

	w := putProfile(r, `{"email":"ann@example.com","name":"Ann","phone":"+359000000","city":"Sofia"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	// Omitted fields keep their stored values.
	w = putProfile(r, `{"city":"Varna"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("partial update status = %d, want 200", w.Code)
	}
	var user models.User
	if err := db.First(&user, "id = ?", "user-1").Error; err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	if user.City != "Varna" {
		t.Errorf("city = %q, want Varna", user.City)
	}
	if user.Phone != "+359000000" {
		t.Errorf("phone = %q, want preserved +359000000", user.Phone)
	}
	if user.Name != "Ann" {
		t.Errorf("name = %q, want preserved Ann", user.Name)
	}

	// An explicit empty string still clears the field.
	w = putProfile(r, `{"phone":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("clear update status = %d, want 200", w.Code)
	}
	if err := db.First(&user, "id = ?", "user-1").Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if user.Phone != "" {
		t.Errorf("phone = %q, want cleared", user.Phone)
	}

	w = putProfile(r, `{"email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid email status = %d, want 400", w.Code)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	r := profileRouter(db, "ghost")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/profile", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Error("expected error body")
	}
}
