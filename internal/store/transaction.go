package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javiator/tenant-management-applications/internal/models"
)

// TransactionQuery describes a filtered, sorted, paginated transaction
// listing. Fields are expected to be validated by the caller: Type is empty
// or a valid tag, SortBy is a whitelisted column name, Page and PerPage are
// positive.
type TransactionQuery struct {
	Type       models.TransactionType // empty means no type filter
	PropertyID *uint                  // nil means no property filter
	SortBy     string
	SortDesc   bool
	Page       int
	PerPage    int
}

func (q TransactionQuery) order() string {
	dir := "asc"
	if q.SortDesc {
		dir = "desc"
	}
	// Secondary id sort keeps pages stable when the sort key ties.
	return fmt.Sprintf("%s %s, id %s", q.SortBy, dir, dir)
}

// ListTransactions returns one page of transactions matching the query plus
// the total match count. Filters combine as an intersection.
func (s *Store) ListTransactions(q TransactionQuery) ([]models.Transaction, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if q.Type != "" {
			tx = tx.Where("type = ?", q.Type)
		}
		if q.PropertyID != nil {
			tx = tx.Where("property_id = ?", *q.PropertyID)
		}
		return tx
	}

	var total int64
	if err := filter(s.db.Model(&models.Transaction{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txs []models.Transaction
	err := filter(s.db).Preload("Property").Preload("Tenant").
		Order(q.order()).
		Offset((q.Page - 1) * q.PerPage).
		Limit(q.PerPage).
		Find(&txs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

// TransactionsByProperty returns a property's full history, newest first.
func (s *Store) TransactionsByProperty(propertyID uint) ([]models.Transaction, error) {
	return s.ownerTransactions("property_id = ?", propertyID)
}

// TransactionsByTenant returns a tenant's full history, newest first.
func (s *Store) TransactionsByTenant(tenantID uint) ([]models.Transaction, error) {
	return s.ownerTransactions("tenant_id = ?", tenantID)
}

func (s *Store) ownerTransactions(cond string, id uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.Preload("Property").Preload("Tenant").
		Where(cond, id).
		Order("transaction_date desc, id desc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txs, nil
}

// ListAllTransactions returns every transaction with references preloaded
// (reports).
func (s *Store) ListAllTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.Preload("Property").Preload("Tenant").Order("id").Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// GetTransaction fetches one transaction by id with references preloaded.
func (s *Store) GetTransaction(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.Preload("Property").Preload("Tenant").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTransaction inserts a new transaction.
func (s *Store) CreateTransaction(t *models.Transaction) error {
	if err := s.db.Omit(clause.Associations).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// SaveTransaction persists changes to an existing transaction.
func (s *Store) SaveTransaction(t *models.Transaction) error {
	if err := s.db.Omit(clause.Associations).Save(t).Error; err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", t.ID, err)
	}
	return nil
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id uint) error {
	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
