package model

import "time"

// OrderItem represents one line of an order. The primary key is composite:
// line numbers are scoped to their owning order, not globally unique.
// ItemPrice is a snapshot taken when the line was written and is independent
// of the product's current price.
type OrderItem struct {
	OrderID   string    `json:"order_id" gorm:"column:order_id;primaryKey;type:varchar(50)"`
	LineNo    int       `json:"order_item" gorm:"column:order_item;primaryKey;autoIncrement:false"`
	ProductID string    `json:"prod_id" gorm:"column:prod_id;type:varchar(50);index;not null"`
	Quantity  int       `json:"quantity" gorm:"column:quantity"`
	ItemPrice float64   `json:"item_price" gorm:"column:item_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (OrderItem) TableName() string {
	return "orderitems"
}
