package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant is a person renting a property. The property reference is optional:
// a tenant may be recorded before being assigned a unit.
type Tenant struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	PropertyID         *uint     `json:"property_id"`
	Property           *Property `gorm:"foreignKey:PropertyID" json:"-"`
	Passport           string    `gorm:"size:100" json:"passport"`
	PassportValidity   *Date     `json:"passport_validity"`
	AadharNo           string    `gorm:"size:100" json:"aadhar_no"`
	EmploymentDetails  string    `gorm:"size:255" json:"employment_details"`
	PermanentAddress   string    `gorm:"size:255" json:"permanent_address"`
	ContactNo          string    `gorm:"size:20" json:"contact_no"`
	EmergencyContactNo string    `gorm:"size:20" json:"emergency_contact_no"`
	Rent               float64   `json:"rent"`
	Security           float64   `json:"security"`
	MoveInDate         *Date     `json:"move_in_date"`
	ContractStartDate  *Date     `json:"contract_start_date"`
	ContractExpiryDate *Date     `json:"contract_expiry_date"`
	Audit
}

func (t *Tenant) BeforeSave(*gorm.DB) error {
	t.ensureActor()
	return nil
}

// ExpiringSoon reports whether the tenant's contract expires strictly
// between now and two calendar months from now.
func (t *Tenant) ExpiringSoon(now time.Time) bool {
	if t.ContractExpiryDate == nil || t.ContractExpiryDate.IsZero() {
		return false
	}
	expiry := t.ContractExpiryDate.Time
	return expiry.After(now) && expiry.Before(now.AddDate(0, 2, 0))
}

// TenantView is the API representation of a tenant, with the property
// address denormalized and the expiry highlight precomputed.
type TenantView struct {
	Tenant
	PropertyAddress string `json:"property_address"`
	ExpiringSoon    bool   `json:"expiring_soon"`
}

// View builds the API representation. The expiry flag is evaluated against
// the supplied clock so callers and tests control "now".
func (t *Tenant) View(now time.Time) TenantView {
	address := NA
	if t.Property != nil {
		address = t.Property.Address
	}
	return TenantView{
		Tenant:          *t,
		PropertyAddress: address,
		ExpiringSoon:    t.ExpiringSoon(now),
	}
}
