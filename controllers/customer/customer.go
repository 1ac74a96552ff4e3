package customerControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Customer is one row of the admin customer directory: the user plus order
// stats and the first available address contact fields.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	TotalOrders int64     `json:"total_orders"`
	TotalSpent  float64   `json:"total_spent"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	Province    string    `json:"province"`
}

// Correlated subqueries pick one address per user without multiplying the
// joined order rows, which would break the SUM.
const customersQuery = `
SELECT
  u.id,
  u.name,
  u.email,
  u.created_at,
  COUNT(DISTINCT o.id) AS total_orders,
  COALESCE(SUM(o.total_amount), 0) AS total_spent,
  COALESCE((SELECT phone1 FROM addresses WHERE user_id = u.id LIMIT 1), '') AS phone,
  COALESCE((SELECT city FROM addresses WHERE user_id = u.id LIMIT 1), '') AS city,
  COALESCE((SELECT province FROM addresses WHERE user_id = u.id LIMIT 1), '') AS province
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.role <> 'admin'
GROUP BY u.id, u.name, u.email, u.created_at
ORDER BY u.created_at DESC
`

// GetCustomers aggregates per-user order count and lifetime spend.
func GetCustomers(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	if err := db.Raw(customersQuery).Scan(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomersHandler serves the admin customer directory.
func GetCustomersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := GetCustomers(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
