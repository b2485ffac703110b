package model

import "time"

// Vendor represents a product vendor keyed by its business identifier
type Vendor struct {
	ID        string    `json:"vend_id" gorm:"column:vend_id;primaryKey;type:varchar(50)"`
	Name      string    `json:"vend_name" gorm:"column:vend_name;type:varchar(100);not null"`
	Address   string    `json:"vend_address" gorm:"column:vend_address;type:text"`
	City      string    `json:"vend_city" gorm:"column:vend_city;type:varchar(50)"`
	State     string    `json:"vend_state" gorm:"column:vend_state;type:varchar(50)"`
	Zip       string    `json:"vend_zip" gorm:"column:vend_zip;type:varchar(20)"`
	Country   string    `json:"vend_country" gorm:"column:vend_country;type:varchar(50)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (Vendor) TableName() string {
	return "vendors"
}
