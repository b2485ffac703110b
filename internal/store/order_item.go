package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
)

// ListOrderItems returns all order items ordered by order ID and line number.
func (s *Store) ListOrderItems() ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := s.db.Order("order_id, order_item").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetOrderItem returns the line item identified by (orderID, lineNo).
func (s *Store) GetOrderItem(orderID string, lineNo int) (*model.OrderItem, error) {
	var item model.OrderItem
	if err := s.db.Where("order_id = ? AND order_item = ?", orderID, lineNo).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateOrderItem inserts a new line item after checking its order and product
// exist. Line numbers only have to be unique within their owning order; the
// composite primary key rejects a duplicate (order, line) pair.
func (s *Store) CreateOrderItem(item *model.OrderItem) error {
	if err := s.checkOrderExists(item.OrderID); err != nil {
		return err
	}
	if err := s.checkProductExists(item.ProductID); err != nil {
		return err
	}

	if err := s.db.Create(item).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: order item (%q, %d)", ErrDuplicateKey, item.OrderID, item.LineNo)
		}
		return err
	}
	return nil
}

// UpdateOrderItem overwrites the fields of the line item identified by
// (orderID, lineNo), including its product reference.
func (s *Store) UpdateOrderItem(orderID string, lineNo int, in *model.OrderItem) (*model.OrderItem, error) {
	item, err := s.GetOrderItem(orderID, lineNo)
	if err != nil {
		return nil, err
	}

	if err := s.checkProductExists(in.ProductID); err != nil {
		return nil, err
	}

	item.ProductID = in.ProductID
	item.Quantity = in.Quantity
	item.ItemPrice = in.ItemPrice

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteOrderItem removes the line item identified by (orderID, lineNo).
func (s *Store) DeleteOrderItem(orderID string, lineNo int) error {
	result := s.db.Where("order_id = ? AND order_item = ?", orderID, lineNo).Delete(&model.OrderItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order item (%q, %d)", ErrNotFound, orderID, lineNo)
	}
	return nil
}

func (s *Store) checkOrderExists(orderID string) error {
	var count int64
	if err := s.db.Model(&model.Order{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: order %q", ErrReferenceNotFound, orderID)
	}
	return nil
}

func (s *Store) checkProductExists(productID string) error {
	var count int64
	if err := s.db.Model(&model.Product{}).Where("prod_id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: product %q", ErrReferenceNotFound, productID)
	}
	return nil
}
