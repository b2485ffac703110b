package model

import "time"

// Customer represents a customer record keyed by its business identifier
type Customer struct {
	ID        string    `json:"cust_id" gorm:"column:cust_id;primaryKey;type:varchar(50)"`
	Name      string    `json:"cust_name" gorm:"column:cust_name;type:varchar(100)"`
	Address   string    `json:"cust_address" gorm:"column:cust_address;type:text"`
	City      string    `json:"cust_city" gorm:"column:cust_city;type:varchar(50)"`
	State     string    `json:"cust_state" gorm:"column:cust_state;type:varchar(50)"`
	Zip       string    `json:"cust_zip" gorm:"column:cust_zip;type:varchar(20)"`
	Country   string    `json:"cust_country" gorm:"column:cust_country;type:varchar(50)"`
	Contact   string    `json:"cust_contact" gorm:"column:cust_contact;type:varchar(100)"`
	Email     string    `json:"cust_email" gorm:"column:cust_email;type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (Customer) TableName() string {
	return "customers"
}
