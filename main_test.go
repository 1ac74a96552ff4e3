package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/usmanhaider-dev/storefront-api/models"
	"github.com/usmanhaider-dev/storefront-api/routes"
	"github.com/usmanhaider-dev/storefront-api/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.Order{},
		&models.SiteSettings{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func adminCookie(t *testing.T, db *gorm.DB) *http.Cookie {
	t.Helper()
	admin := models.User{ID: "admin_1", Email: "admin@test", Name: "Admin", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	token, err := session.Create(admin)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestGuestCheckoutEndToEnd(t *testing.T) {
	r, db := newTestApp(t)

	// 1. Guest places an order.
	body := `{
		"items": [{"id": 1, "price": 10, "quantity": 2}],
		"totalAmount": 20,
		"customerName": "Walk-in Guest",
		"shippingAddress": {"phone1": "0300", "house": "12", "street": "5", "area": "Johar Town", "city": "Lahore", "province": "Punjab"},
		"email": "guest@test"
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var placed struct {
		Success bool `json:"success"`
		OrderID uint `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	require.True(t, placed.Success)
	require.NotZero(t, placed.OrderID)

	// 2. The listing is admin-only.
	req = httptest.NewRequest(http.MethodGet, "/orders?filter=all", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := adminCookie(t, db)
	req = httptest.NewRequest(http.MethodGet, "/orders?filter=all", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []struct {
		ID              uint                   `json:"id"`
		TotalAmount     float64                `json:"total_amount"`
		Status          string                 `json:"status"`
		ShippingAddress models.AddressSnapshot `json:"shipping_address"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, placed.OrderID, orders[0].ID)
	require.Equal(t, float64(20), orders[0].TotalAmount)
	require.Equal(t, "pending", orders[0].Status)
	require.Equal(t, "Lahore", orders[0].ShippingAddress.City)
	require.Equal(t, "Walk-in Guest", orders[0].ShippingAddress.Name)

	// 3. Admin completes the order.
	update := fmt.Sprintf(`{"orderId": %d, "status": "completed"}`, placed.OrderID)
	req = httptest.NewRequest(http.MethodPut, "/orders", strings.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, placed.OrderID).Error)
	require.Equal(t, models.OrderStatusCompleted, stored.Status)
}

func TestLoggedInCheckoutUsesSessionIdentity(t *testing.T) {
	r, db := newTestApp(t)

	// Register through the API to get a real session cookie.
	register := `{"email": "sana@test", "password": "pw", "name": "Sana"}`
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	// The body claims a different email; the session must win.
	body := `{
		"items": [{"id": 2, "price": 15, "quantity": 1}],
		"totalAmount": 15,
		"customerName": "Sana",
		"shippingAddress": {"phone1": "0300", "city": "Karachi", "province": "Sindh"},
		"email": "spoofed@test"
	}`
	req = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, db.Order("id DESC").First(&stored).Error)
	require.NotNil(t, stored.UserID)
	require.Equal(t, "sana@test", stored.CustomerEmail)
	require.NotNil(t, stored.AddressID)

	// One fresh address row, owned by the session user.
	var address models.Address
	require.NoError(t, db.First(&address, *stored.AddressID).Error)
	require.NotNil(t, address.UserID)
	require.Equal(t, *stored.UserID, *address.UserID)
	require.Equal(t, "Karachi", address.City)
}
