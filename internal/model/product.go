package model

import "time"

// Product represents a product offered by a vendor
type Product struct {
	ID          string    `json:"prod_id" gorm:"column:prod_id;primaryKey;type:varchar(50)"`
	VendorID    string    `json:"vend_id" gorm:"column:vend_id;type:varchar(50);index;not null"`
	Name        string    `json:"prod_name" gorm:"column:prod_name;type:varchar(100)"`
	Price       float64   `json:"prod_price" gorm:"column:prod_price"`
	Description string    `json:"prod_desc" gorm:"column:prod_desc;type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (Product) TableName() string {
	return "products"
}
