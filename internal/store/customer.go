package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
)

// ListCustomers returns all customers ordered by customer ID.
func (s *Store) ListCustomers() ([]model.Customer, error) {
	var customers []model.Customer
	if err := s.db.Order("cust_id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns the customer with the given ID.
func (s *Store) GetCustomer(id string) (*model.Customer, error) {
	var customer model.Customer
	if err := s.db.Where("cust_id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer inserts a new customer. The primary-key constraint rejects
// duplicates, so a concurrent create of the same ID cannot slip through.
func (s *Store) CreateCustomer(customer *model.Customer) error {
	if err := s.db.Create(customer).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: customer %q", ErrDuplicateKey, customer.ID)
		}
		return err
	}
	return nil
}

// UpdateCustomer overwrites the fields of the customer with the given ID.
// The ID itself is taken from the lookup key; an ID carried in the payload is
// ignored.
func (s *Store) UpdateCustomer(id string, in *model.Customer) (*model.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.Zip = in.Zip
	customer.Country = in.Country
	customer.Contact = in.Contact
	customer.Email = in.Email

	if err := s.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes the customer with the given ID. Customers that still
// own orders are not deleted.
func (s *Store) DeleteCustomer(id string) error {
	var dependents int64
	if err := s.db.Model(&model.Order{}).Where("cust_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return fmt.Errorf("%w: %d orders reference customer %q", ErrInUse, dependents, id)
	}

	result := s.db.Where("cust_id = ?", id).Delete(&model.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: customer %q", ErrNotFound, id)
	}
	return nil
}
