package models

import "gorm.io/gorm"

// Transaction is a single ledger entry against a property, optionally tied
// to a tenant. Amount is stored as an unsigned magnitude; the sign is
// derived from Type when a balance is computed.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PropertyID      uint            `gorm:"not null;index" json:"property_id"`
	Property        *Property       `gorm:"foreignKey:PropertyID" json:"-"`
	TenantID        *uint           `gorm:"index" json:"tenant_id"`
	Tenant          *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
	Type            TransactionType `gorm:"size:50;not null" json:"type"`
	ForMonth        string          `gorm:"size:20" json:"for_month"`
	Amount          float64         `gorm:"not null" json:"amount"`
	TransactionDate Date            `gorm:"not null" json:"transaction_date"`
	Comments        string          `gorm:"size:255" json:"comments"`
	Audit
}

func (t *Transaction) BeforeSave(*gorm.DB) error {
	t.ensureActor()
	return nil
}

// TransactionView is the API representation of a transaction with both
// foreign references resolved to display strings.
type TransactionView struct {
	Transaction
	PropertyAddress string `json:"property_address"`
	TenantName      string `json:"tenant_name"`
}

// View builds the API representation, substituting "N/A" for absent
// references.
func (t *Transaction) View() TransactionView {
	address, name := NA, NA
	if t.Property != nil {
		address = t.Property.Address
	}
	if t.Tenant != nil {
		name = t.Tenant.Name
	}
	return TransactionView{
		Transaction:     *t,
		PropertyAddress: address,
		TenantName:      name,
	}
}

// Views maps a slice of transactions to their API representation.
func Views(txs []Transaction) []TransactionView {
	views := make([]TransactionView, len(txs))
	for i := range txs {
		views[i] = txs[i].View()
	}
	return views
}
