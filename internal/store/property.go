package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javiator/tenant-management-applications/internal/models"
)

// ListProperties returns every property, oldest first.
func (s *Store) ListProperties() ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Order("id").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// GetProperty fetches one property by id.
func (s *Store) GetProperty(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a new property.
func (s *Store) CreateProperty(p *models.Property) error {
	if err := s.db.Omit(clause.Associations).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// SaveProperty persists changes to an existing property.
func (s *Store) SaveProperty(p *models.Property) error {
	if err := s.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}
	return nil
}

// DeleteProperty removes a property by id.
func (s *Store) DeleteProperty(id uint) error {
	res := s.db.Delete(&models.Property{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete property %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountTenantsByProperty counts tenants assigned to a property.
func (s *Store) CountTenantsByProperty(propertyID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Tenant{}).Where("property_id = ?", propertyID).Count(&n).Error
	return n, err
}

// CountTransactionsByProperty counts transactions recorded against a property.
func (s *Store) CountTransactionsByProperty(propertyID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Transaction{}).Where("property_id = ?", propertyID).Count(&n).Error
	return n, err
}
