package service

import (
	"strconv"

	"github.com/javiator/tenant-management-applications/internal/ledger"
	"github.com/javiator/tenant-management-applications/internal/models"
	"github.com/javiator/tenant-management-applications/internal/store"
)

const defaultTransactionPerPage = 50

// sortableColumns whitelists the transaction list sort keys. Anything else
// is rejected rather than handed to the database.
var sortableColumns = map[string]string{
	"id":               "id",
	"type":             "type",
	"amount":           "amount",
	"transaction_date": "transaction_date",
	"created_date":     "created_date",
}

// TransactionListInput carries the raw listing parameters as received from
// the query string. Zero values select the defaults.
type TransactionListInput struct {
	Type          string
	PropertyID    string
	SortBy        string
	SortDirection string
	Page          int
	PerPage       int
}

// TransactionPage is the paginated transaction listing envelope.
type TransactionPage struct {
	Items      []models.TransactionView `json:"items"`
	Page       int                      `json:"page"`
	PerPage    int                      `json:"per_page"`
	TotalPages int                      `json:"total_pages"`
	TotalItems int64                    `json:"total_items"`
}

// OwnerLedger is a property's or tenant's full history with its signed
// balance.
type OwnerLedger struct {
	Transactions []models.TransactionView `json:"transactions"`
	Total        float64                  `json:"total"`
}

// TransactionInput is the create payload for a transaction.
type TransactionInput struct {
	PropertyID      uint         `json:"property_id" validate:"required"`
	TenantID        *uint        `json:"tenant_id"`
	Type            string       `json:"type" validate:"required"`
	ForMonth        string       `json:"for_month"`
	Amount          *float64     `json:"amount" validate:"required"`
	TransactionDate *models.Date `json:"transaction_date"`
	Comments        string       `json:"comments"`
}

// TransactionUpdate is the partial update payload: only present fields
// change. Setting tenant_id to 0 clears the assignment.
type TransactionUpdate struct {
	PropertyID      *uint        `json:"property_id"`
	TenantID        *uint        `json:"tenant_id"`
	Type            *string      `json:"type"`
	ForMonth        *string      `json:"for_month"`
	Amount          *float64     `json:"amount"`
	TransactionDate *models.Date `json:"transaction_date"`
	Comments        *string      `json:"comments"`
}

// Transactions provides transaction CRUD, the filtered listing, and the
// per-owner ledgers.
type Transactions struct {
	store *store.Store
}

// NewTransactions returns the transaction service.
func NewTransactions(s *store.Store) *Transactions {
	return &Transactions{store: s}
}

// List returns one page of transactions matching the input. Filters combine
// as an intersection; unknown type tags and sort keys are rejected.
func (t *Transactions) List(in TransactionListInput) (*TransactionPage, error) {
	q := store.TransactionQuery{
		SortBy:   "transaction_date",
		SortDesc: true,
		Page:     in.Page,
		PerPage:  in.PerPage,
	}

	if in.Type != "" && in.Type != "all" {
		tag := models.TransactionType(in.Type)
		if !tag.Valid() {
			return nil, Validationf("unknown transaction type %q", in.Type)
		}
		q.Type = tag
	}

	if in.PropertyID != "" && in.PropertyID != "all" {
		id, err := strconv.ParseUint(in.PropertyID, 10, 32)
		if err != nil {
			return nil, Validationf("invalid property_id %q", in.PropertyID)
		}
		pid := uint(id)
		q.PropertyID = &pid
	}

	if in.SortBy != "" {
		column, ok := sortableColumns[in.SortBy]
		if !ok {
			return nil, Validationf("cannot sort by %q", in.SortBy)
		}
		q.SortBy = column
	}

	switch in.SortDirection {
	case "", "desc":
		q.SortDesc = true
	case "asc":
		q.SortDesc = false
	default:
		return nil, Validationf("sort_direction must be asc or desc, got %q", in.SortDirection)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultTransactionPerPage
	}

	txs, total, err := t.store.ListTransactions(q)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	return &TransactionPage{
		Items:      models.Views(txs),
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

// PropertyLedger returns a property's history, newest first, with its
// balance.
func (t *Transactions) PropertyLedger(propertyID uint) (*OwnerLedger, error) {
	if _, err := t.store.GetProperty(propertyID); err != nil {
		return nil, notFoundOr(err, "property", propertyID)
	}
	txs, err := t.store.TransactionsByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return &OwnerLedger{Transactions: models.Views(txs), Total: ledger.Balance(txs)}, nil
}

// TenantLedger returns a tenant's history, newest first, with its balance.
func (t *Transactions) TenantLedger(tenantID uint) (*OwnerLedger, error) {
	if _, err := t.store.GetTenant(tenantID); err != nil {
		return nil, notFoundOr(err, "tenant", tenantID)
	}
	txs, err := t.store.TransactionsByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return &OwnerLedger{Transactions: models.Views(txs), Total: ledger.Balance(txs)}, nil
}

// Get returns one transaction by id.
func (t *Transactions) Get(id uint) (*models.TransactionView, error) {
	tx, err := t.store.GetTransaction(id)
	if err != nil {
		return nil, notFoundOr(err, "transaction", id)
	}
	view := tx.View()
	return &view, nil
}

// Create validates and inserts a new transaction. The transaction date
// defaults to today when omitted.
func (t *Transactions) Create(in TransactionInput) (*models.TransactionView, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Validationf("invalid transaction: %v", err)
	}

	tag := models.TransactionType(in.Type)
	if !tag.Valid() {
		return nil, Validationf("unknown transaction type %q", in.Type)
	}
	if *in.Amount < 0 {
		return nil, Validationf("amount must be a non-negative magnitude; the sign is derived from the type")
	}
	if _, err := t.store.GetProperty(in.PropertyID); err != nil {
		return nil, Validationf("property %d does not exist", in.PropertyID)
	}
	if in.TenantID != nil {
		if _, err := t.store.GetTenant(*in.TenantID); err != nil {
			return nil, Validationf("tenant %d does not exist", *in.TenantID)
		}
	}

	date := models.Today()
	if in.TransactionDate != nil && !in.TransactionDate.IsZero() {
		date = *in.TransactionDate
	}

	tx := &models.Transaction{
		PropertyID:      in.PropertyID,
		TenantID:        in.TenantID,
		Type:            tag,
		ForMonth:        in.ForMonth,
		Amount:          *in.Amount,
		TransactionDate: date,
		Comments:        in.Comments,
	}
	if err := t.store.CreateTransaction(tx); err != nil {
		return nil, err
	}
	return t.Get(tx.ID)
}

// Update applies the provided fields to an existing transaction.
func (t *Transactions) Update(id uint, in TransactionUpdate) (*models.TransactionView, error) {
	tx, err := t.store.GetTransaction(id)
	if err != nil {
		return nil, notFoundOr(err, "transaction", id)
	}

	if in.PropertyID != nil {
		if _, err := t.store.GetProperty(*in.PropertyID); err != nil {
			return nil, Validationf("property %d does not exist", *in.PropertyID)
		}
		tx.PropertyID = *in.PropertyID
		tx.Property = nil
	}
	if in.TenantID != nil {
		if *in.TenantID == 0 {
			tx.TenantID = nil
		} else {
			if _, err := t.store.GetTenant(*in.TenantID); err != nil {
				return nil, Validationf("tenant %d does not exist", *in.TenantID)
			}
			tx.TenantID = in.TenantID
		}
		tx.Tenant = nil
	}
	if in.Type != nil {
		tag := models.TransactionType(*in.Type)
		if !tag.Valid() {
			return nil, Validationf("unknown transaction type %q", *in.Type)
		}
		tx.Type = tag
	}
	if in.ForMonth != nil {
		tx.ForMonth = *in.ForMonth
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, Validationf("amount must be a non-negative magnitude; the sign is derived from the type")
		}
		tx.Amount = *in.Amount
	}
	if in.TransactionDate != nil && !in.TransactionDate.IsZero() {
		tx.TransactionDate = *in.TransactionDate
	}
	if in.Comments != nil {
		tx.Comments = *in.Comments
	}

	if err := t.store.SaveTransaction(tx); err != nil {
		return nil, err
	}
	return t.Get(tx.ID)
}

// Delete removes a transaction.
func (t *Transactions) Delete(id uint) error {
	if err := t.store.DeleteTransaction(id); err != nil {
		return notFoundOr(err, "transaction", id)
	}
	return nil
}
