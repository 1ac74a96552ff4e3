package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting handling
	OrderStatusCompleted OrderStatus = "completed" // fulfilled and closed
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled at any point
)

// ParseOrderStatus maps a client string to the closed status enum.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Order is a point-in-time record of a checkout. Items and ShippingAddress
// are snapshots: deleting a product or editing an address later must not
// change what this row says was bought and where it shipped.
type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          *string         `gorm:"index" json:"user_id"`
	AddressID       *uint           `json:"address_id"`
	CustomerEmail   string          `json:"customer_email"`
	TotalAmount     float64         `gorm:"not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items           ItemList        `gorm:"type:jsonb" json:"items"`
	ShippingAddress AddressSnapshot `gorm:"type:jsonb" json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
