package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
)

// ListOrders returns all orders ordered by order ID.
func (s *Store) ListOrders() ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.Order("order_id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the order with the given ID.
func (s *Store) GetOrder(id string) (*model.Order, error) {
	var order model.Order
	if err := s.db.Where("order_id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder inserts a new order after checking its customer exists.
func (s *Store) CreateOrder(order *model.Order) error {
	if err := s.checkCustomerExists(order.CustomerID); err != nil {
		return err
	}

	if err := s.db.Create(order).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: order %q", ErrDuplicateKey, order.ID)
		}
		return err
	}
	return nil
}

// UpdateOrder overwrites the fields of the order with the given ID, including
// its customer reference.
func (s *Store) UpdateOrder(id string, in *model.Order) (*model.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkCustomerExists(in.CustomerID); err != nil {
		return nil, err
	}

	order.Date = in.Date
	order.CustomerID = in.CustomerID

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes the order with the given ID. Orders that still own line
// items are not deleted.
func (s *Store) DeleteOrder(id string) error {
	var dependents int64
	if err := s.db.Model(&model.OrderItem{}).Where("order_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return fmt.Errorf("%w: %d order items reference order %q", ErrInUse, dependents, id)
	}

	result := s.db.Where("order_id = ?", id).Delete(&model.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order %q", ErrNotFound, id)
	}
	return nil
}

func (s *Store) checkCustomerExists(customerID string) error {
	var count int64
	if err := s.db.Model(&model.Customer{}).Where("cust_id = ?", customerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: customer %q", ErrReferenceNotFound, customerID)
	}
	return nil
}
