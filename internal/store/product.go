package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
)

// ListProducts returns all products ordered by product ID.
func (s *Store) ListProducts() ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Order("prod_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns the product with the given ID.
func (s *Store) GetProduct(id string) (*model.Product, error) {
	var product model.Product
	if err := s.db.Where("prod_id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product after checking its vendor exists.
func (s *Store) CreateProduct(product *model.Product) error {
	if err := s.checkVendorExists(product.VendorID); err != nil {
		return err
	}

	if err := s.db.Create(product).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: product %q", ErrDuplicateKey, product.ID)
		}
		return err
	}
	return nil
}

// UpdateProduct overwrites the fields of the product with the given ID,
// including its vendor reference.
func (s *Store) UpdateProduct(id string, in *model.Product) (*model.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkVendorExists(in.VendorID); err != nil {
		return nil, err
	}

	product.VendorID = in.VendorID
	product.Name = in.Name
	product.Price = in.Price
	product.Description = in.Description

	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product with the given ID. Products still
// referenced by order items are not deleted.
func (s *Store) DeleteProduct(id string) error {
	var dependents int64
	if err := s.db.Model(&model.OrderItem{}).Where("prod_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return fmt.Errorf("%w: %d order items reference product %q", ErrInUse, dependents, id)
	}

	result := s.db.Where("prod_id = ?", id).Delete(&model.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, id)
	}
	return nil
}

func (s *Store) checkVendorExists(vendorID string) error {
	var count int64
	if err := s.db.Model(&model.Vendor{}).Where("vend_id = ?", vendorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: vendor %q", ErrReferenceNotFound, vendorID)
	}
	return nil
}
