package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javiator/tenant-management-applications/internal/models"
)

// ListTenantsPage returns one page of tenants with their property preloaded,
// plus the total tenant count. page is 1-based.
func (s *Store) ListTenantsPage(page, perPage int) ([]models.Tenant, int64, error) {
	var total int64
	if err := s.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var tenants []models.Tenant
	err := s.db.Preload("Property").
		Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, total, nil
}

// ListTenants returns every tenant with their property preloaded (reports).
func (s *Store) ListTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.Preload("Property").Order("id").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// GetTenant fetches one tenant by id with its property preloaded.
func (s *Store) GetTenant(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Preload("Property").First(&tenant, id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// CreateTenant inserts a new tenant.
func (s *Store) CreateTenant(t *models.Tenant) error {
	if err := s.db.Omit(clause.Associations).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

// SaveTenant persists changes to an existing tenant.
func (s *Store) SaveTenant(t *models.Tenant) error {
	if err := s.db.Omit(clause.Associations).Save(t).Error; err != nil {
		return fmt.Errorf("failed to update tenant %d: %w", t.ID, err)
	}
	return nil
}

// DeleteTenant removes a tenant by id.
func (s *Store) DeleteTenant(id uint) error {
	res := s.db.Delete(&models.Tenant{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tenant %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountTransactionsByTenant counts transactions recorded against a tenant.
func (s *Store) CountTransactionsByTenant(tenantID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Transaction{}).Where("tenant_id = ?", tenantID).Count(&n).Error
	return n, err
}
