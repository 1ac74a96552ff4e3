package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/usmanhaider-dev/storefront-api/middleware"
	"github.com/usmanhaider-dev/storefront-api/models"
	"gorm.io/gorm"
)

// GuestUserID marks a checkout with no authenticated identity.
const GuestUserID = "guest"

// -------- Request Structs --------

type PlaceOrderRequest struct {
	Items           models.ItemList        `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress models.AddressSnapshot `json:"shippingAddress"`
	CustomerName    string                 `json:"customerName"`
	Email           string                 `json:"email"`
}

type UpdateOrderStatusRequest struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

// OrderPayload is the validated input of the checkout transaction.
type OrderPayload struct {
	UserID          string
	Email           string
	TotalAmount     float64
	Items           models.ItemList
	ShippingAddress models.AddressSnapshot
}

// OrderFilter selects the date predicate of the admin listing.
type OrderFilter struct {
	Filter    string
	StartDate string
	EndDate   string
}

// AdminOrder is an order row joined with the owner's display name.
type AdminOrder struct {
	models.Order
	UserName string `json:"user_name"`
}

// -------- Core Logic --------

// CreateOrder atomically persists a checkout: for a known user one fresh
// Address row plus one Order row referencing it, for a guest one Order row
// with no address reference. Any failure rolls back both inserts.
func CreateOrder(db *gorm.DB, payload OrderPayload) (models.Order, error) {
	var ownerID *string
	if payload.UserID != "" && payload.UserID != GuestUserID {
		id := payload.UserID
		ownerID = &id
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var addressID *uint
		if ownerID != nil {
			address := models.Address{
				UserID:   ownerID,
				Name:     payload.ShippingAddress.Name,
				Phone1:   payload.ShippingAddress.Phone1,
				Phone2:   payload.ShippingAddress.Phone2,
				HouseNo:  payload.ShippingAddress.House,
				Street:   payload.ShippingAddress.Street,
				Area:     payload.ShippingAddress.Area,
				City:     payload.ShippingAddress.City,
				Province: payload.ShippingAddress.Province,
				Landmark: payload.ShippingAddress.Landmark,
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			addressID = &address.ID
		}

		order = models.Order{
			UserID:          ownerID,
			AddressID:       addressID,
			CustomerEmail:   payload.Email,
			TotalAmount:     payload.TotalAmount,
			Status:          models.OrderStatusPending,
			Items:           payload.Items,
			ShippingAddress: payload.ShippingAddress,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// dateRange resolves a filter to a half-open [start, end) interval. The
// boolean reports whether a restriction applies; unknown filters and
// incomplete custom ranges mean no restriction.
func dateRange(f OrderFilter, now time.Time) (time.Time, time.Time, bool) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch f.Filter {
	case "today":
		return midnight, midnight.AddDate(0, 0, 1), true
	case "week":
		// ISO week, Monday start
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := midnight.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 7), true
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), true
	case "custom":
		if f.StartDate == "" || f.EndDate == "" {
			return time.Time{}, time.Time{}, false
		}
		start, err := time.ParseInLocation("2006-01-02", f.StartDate, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		end, err := time.ParseInLocation("2006-01-02", f.EndDate, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		// inclusive end date
		return start, end.AddDate(0, 0, 1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// GetOrders lists orders for the admin dashboard, newest first, joined with
// the owning user's name. Snapshot columns come back already decoded.
func GetOrders(db *gorm.DB, f OrderFilter) ([]AdminOrder, error) {
	query := db.Table("orders").
		Select("orders.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = orders.user_id")

	if start, end, ok := dateRange(f, time.Now()); ok {
		query = query.Where("orders.created_at >= ? AND orders.created_at < ?", start, end)
	}

	var orders []AdminOrder
	if err := query.Order("orders.created_at DESC").Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets the status of one order. The returned bool is false
// when no such order exists.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (bool, error) {
	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// -------- Handlers --------

// PlaceOrderHandler accepts a public checkout. A valid session overrides the
// claimed identity; the body's email is only trusted for guests.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		if req.ShippingAddress.City == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address is missing"})
			return
		}

		userID := GuestUserID
		email := req.Email
		if claims := middleware.Claims(c); claims != nil {
			userID = claims.UserID
			email = claims.Email
		}

		shipping := req.ShippingAddress
		if req.CustomerName != "" {
			shipping.Name = req.CustomerName
		}

		order, err := CreateOrder(db, OrderPayload{
			UserID:          userID,
			Email:           email,
			TotalAmount:     req.TotalAmount,
			Items:           req.Items,
			ShippingAddress: shipping,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{"success": true, "orderId": order.ID})
	}
}

// GetOrdersHandler serves the admin order listing with optional date filters.
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetOrders(db, OrderFilter{
			Filter:    c.Query("filter"),
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler transitions one order to a new status.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.OrderID == 0 || req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		found, err := UpdateOrderStatus(db, req.OrderID, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated to " + string(status)})
	}
}
