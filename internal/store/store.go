// Package store implements the record store backing the inventory service:
// five entity collections (customers, vendors, products, orders, order items)
// with list/get/create/update/delete operations over a relational database.
//
// Primary-key uniqueness is enforced by the database constraint, not by a
// check-then-insert in application code, so concurrent creates of the same key
// cannot both succeed. Referential checks (a product's vendor, an order's
// customer, an order item's order and product) are advisory reads performed
// before the write.
package store

import (
	"gorm.io/gorm"

	"inventory-service/internal/model"
)

// Store exposes the entity collections over an explicitly injected database
// handle. The caller owns the handle's lifecycle.
type Store struct {
	db *gorm.DB
}

// New migrates the schema and returns a store bound to db.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Vendor{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}
