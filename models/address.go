package models

import "time"

// Address is the saved shipping address of a logged-in customer. Every order
// placed by a known user inserts a fresh row; guest orders never create one.
type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *string   `gorm:"index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone1    string    `gorm:"not null" json:"phone1"`
	Phone2    string    `json:"phone2"`
	HouseNo   string    `json:"house_no"`
	Street    string    `json:"street"`
	Area      string    `json:"area"`
	City      string    `gorm:"not null" json:"city"`
	Province  string    `gorm:"not null" json:"province"`
	Landmark  string    `json:"landmark"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
