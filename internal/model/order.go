package model

import "time"

// Order represents a customer order. The order date is stored as opaque text,
// matching the schema this service fronts.
type Order struct {
	ID         string    `json:"order_id" gorm:"column:order_id;primaryKey;type:varchar(50)"`
	Date       string    `json:"order_date" gorm:"column:order_date;type:varchar(50)"`
	CustomerID string    `json:"cust_id" gorm:"column:cust_id;type:varchar(50);index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (Order) TableName() string {
	return "orders"
}
