package models

import "gorm.io/gorm"

// Property is a rentable unit owned by the landlord. It is the root of the
// schema: tenants and transactions reference it.
type Property struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Address     string  `gorm:"size:255;not null" json:"address"`
	Rent        float64 `json:"rent"`
	Maintenance float64 `json:"maintenance"`
	Audit
}

func (p *Property) BeforeSave(*gorm.DB) error {
	p.ensureActor()
	return nil
}
