package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
)

// ListVendors returns all vendors ordered by vendor ID.
func (s *Store) ListVendors() ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := s.db.Order("vend_id").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendor returns the vendor with the given ID.
func (s *Store) GetVendor(id string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := s.db.Where("vend_id = ?", id).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// CreateVendor inserts a new vendor.
func (s *Store) CreateVendor(vendor *model.Vendor) error {
	if err := s.db.Create(vendor).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: vendor %q", ErrDuplicateKey, vendor.ID)
		}
		return err
	}
	return nil
}

// UpdateVendor overwrites the fields of the vendor with the given ID.
func (s *Store) UpdateVendor(id string, in *model.Vendor) (*model.Vendor, error) {
	vendor, err := s.GetVendor(id)
	if err != nil {
		return nil, err
	}

	vendor.Name = in.Name
	vendor.Address = in.Address
	vendor.City = in.City
	vendor.State = in.State
	vendor.Zip = in.Zip
	vendor.Country = in.Country

	if err := s.db.Save(vendor).Error; err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor removes the vendor with the given ID. Vendors that still own
// products are not deleted.
func (s *Store) DeleteVendor(id string) error {
	var dependents int64
	if err := s.db.Model(&model.Product{}).Where("vend_id = ?", id).Count(&dependents).Error; err != nil {
		return err
	}
	if dependents > 0 {
		return fmt.Errorf("%w: %d products reference vendor %q", ErrInUse, dependents, id)
	}

	result := s.db.Where("vend_id = ?", id).Delete(&model.Vendor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: vendor %q", ErrNotFound, id)
	}
	return nil
}
