package orderControllers

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Address{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, name, role string) models.User {
	t.Helper()
	user := models.User{ID: id, Email: id + "@test", Name: name, Password: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func testPayload(userID string) OrderPayload {
	return OrderPayload{
		UserID:      userID,
		Email:       "buyer@test",
		TotalAmount: 20,
		Items: models.ItemList{
			{ProductID: 1, Price: 10, Quantity: 2},
		},
		ShippingAddress: models.AddressSnapshot{
			Name:     "Ali Raza",
			Phone1:   "03001234567",
			House:    "12",
			Street:   "5",
			Area:     "Johar Town",
			City:     "Lahore",
			Province: "Punjab",
		},
	}
}

func TestCreateOrderForKnownUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user_1", "Ali Raza", models.RoleUser)

	order, err := CreateOrder(db, testPayload(user.ID))
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, models.OrderStatusPending, order.Status)

	// Exactly one address row, referenced by the order.
	var addresses []models.Address
	require.NoError(t, db.Find(&addresses).Error)
	require.Len(t, addresses, 1)
	require.NotNil(t, addresses[0].UserID)
	require.Equal(t, user.ID, *addresses[0].UserID)
	require.NotNil(t, order.AddressID)
	require.Equal(t, addresses[0].ID, *order.AddressID)
	require.Equal(t, "Lahore", addresses[0].City)
}

func TestCreateOrderGuest(t *testing.T) {
	db := setupTestDB(t)

	order, err := CreateOrder(db, testPayload(GuestUserID))
	require.NoError(t, err)
	require.Nil(t, order.UserID)
	require.Nil(t, order.AddressID)

	var addressCount int64
	require.NoError(t, db.Model(&models.Address{}).Count(&addressCount).Error)
	require.Zero(t, addressCount)

	// The shipping snapshot survives without an Address row.
	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	require.Equal(t, "Lahore", stored.ShippingAddress.City)
	require.Equal(t, "Ali Raza", stored.ShippingAddress.Name)
}

func TestCreateOrderItemsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	payload := testPayload(GuestUserID)
	payload.Items = models.ItemList{
		{ProductID: 7, Name: "Kettle", Price: 49.5, Image: "/img/kettle.jpg", Quantity: 1},
		{ProductID: 9, Price: 10, Quantity: 3},
	}

	order, err := CreateOrder(db, payload)
	require.NoError(t, err)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	require.Equal(t, payload.Items, stored.Items)
}

func TestCreateOrderRollsBackAddressOnOrderFailure(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user_rb", "Ali Raza", models.RoleUser)

	// Force the second insert of the transaction to fail.
	orderType := reflect.TypeOf(models.Order{})
	err := db.Callback().Create().Before("gorm:create").Register("fail_order_insert", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.ModelType == orderType {
			tx.AddError(errors.New("forced order insert failure"))
		}
	})
	require.NoError(t, err)

	_, err = CreateOrder(db, testPayload(user.ID))
	require.Error(t, err)

	// The address insert must not survive the rollback.
	var addressCount, orderCount int64
	require.NoError(t, db.Model(&models.Address{}).Count(&addressCount).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, addressCount)
	require.Zero(t, orderCount)
}

func seedOrderAt(t *testing.T, db *gorm.DB, userID *string, total float64, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		UserID:          userID,
		CustomerEmail:   "buyer@test",
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		Items:           models.ItemList{{ProductID: 1, Price: total, Quantity: 1}},
		ShippingAddress: models.AddressSnapshot{City: "Lahore", Province: "Punjab"},
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestGetOrdersFilters(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user_f", "Sana", models.RoleUser)

	now := time.Now()
	january := time.Date(2024, time.January, 15, 12, 0, 0, 0, now.Location())

	todayOrder := seedOrderAt(t, db, &user.ID, 100, now)
	seedOrderAt(t, db, nil, 50, now.AddDate(0, 0, -40))
	januaryOrder := seedOrderAt(t, db, nil, 25, january)

	t.Run("all by default", func(t *testing.T) {
		orders, err := GetOrders(db, OrderFilter{Filter: "bogus"})
		require.NoError(t, err)
		require.Len(t, orders, 3)
		// Newest first
		require.Equal(t, todayOrder.ID, orders[0].ID)
	})

	t.Run("today", func(t *testing.T) {
		orders, err := GetOrders(db, OrderFilter{Filter: "today"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, todayOrder.ID, orders[0].ID)
		require.Equal(t, "Sana", orders[0].UserName)
	})

	t.Run("custom inclusive range", func(t *testing.T) {
		orders, err := GetOrders(db, OrderFilter{
			Filter:    "custom",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, januaryOrder.ID, orders[0].ID)
	})

	t.Run("custom without bounds means all", func(t *testing.T) {
		orders, err := GetOrders(db, OrderFilter{Filter: "custom", StartDate: "2024-01-01"})
		require.NoError(t, err)
		require.Len(t, orders, 3)
	})

	t.Run("snapshots come back decoded", func(t *testing.T) {
		orders, err := GetOrders(db, OrderFilter{Filter: "today"})
		require.NoError(t, err)
		require.Equal(t, "Lahore", orders[0].ShippingAddress.City)
		require.Len(t, orders[0].Items, 1)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrderAt(t, db, nil, 10, time.Now().Add(-time.Hour))

	found, err := UpdateOrderStatus(db, order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)
	require.True(t, found)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusCompleted, stored.Status)
	require.True(t, stored.UpdatedAt.After(order.UpdatedAt))

	found, err = UpdateOrderStatus(db, 99999, models.OrderStatusCancelled)
	require.NoError(t, err)
	require.False(t, found)
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "cancelled", "Completed"} {
		_, err := models.ParseOrderStatus(valid)
		require.NoError(t, err, valid)
	}
	_, err := models.ParseOrderStatus("shipped")
	require.Error(t, err)
}

func TestDateRangeWeek(t *testing.T) {
	// Wednesday 2024-07-10; ISO week runs Mon 08 .. Sun 14.
	now := time.Date(2024, time.July, 10, 15, 30, 0, 0, time.UTC)
	start, end, ok := dateRange(OrderFilter{Filter: "week"}, now)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), end)

	// Sunday belongs to the same ISO week.
	sunday := time.Date(2024, time.July, 14, 9, 0, 0, 0, time.UTC)
	start, end, ok = dateRange(OrderFilter{Filter: "week"}, sunday)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), end)
}
