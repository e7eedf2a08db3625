// Package service implements the business operations between the HTTP
// handlers and the store.
package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/javiator/tenant-management-applications/internal/models"
	"github.com/javiator/tenant-management-applications/internal/store"
)

var validate = validator.New()

// PropertyInput is the create payload for a property.
type PropertyInput struct {
	Address     string  `json:"address" validate:"required"`
	Rent        float64 `json:"rent" validate:"gte=0"`
	Maintenance float64 `json:"maintenance" validate:"gte=0"`
}

// PropertyUpdate is the partial update payload: only present fields change.
type PropertyUpdate struct {
	Address     *string  `json:"address"`
	Rent        *float64 `json:"rent"`
	Maintenance *float64 `json:"maintenance"`
}

// Properties provides property CRUD with referential-integrity guards.
type Properties struct {
	store *store.Store
}

// NewProperties returns the property service.
func NewProperties(s *store.Store) *Properties {
	return &Properties{store: s}
}

// List returns every property.
func (p *Properties) List() ([]models.Property, error) {
	return p.store.ListProperties()
}

// Get returns one property by id.
func (p *Properties) Get(id uint) (*models.Property, error) {
	property, err := p.store.GetProperty(id)
	if err != nil {
		return nil, notFoundOr(err, "property", id)
	}
	return property, nil
}

// Create validates and inserts a new property.
func (p *Properties) Create(in PropertyInput) (*models.Property, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Validationf("invalid property: %v", err)
	}
	property := &models.Property{
		Address:     in.Address,
		Rent:        in.Rent,
		Maintenance: in.Maintenance,
	}
	if err := p.store.CreateProperty(property); err != nil {
		return nil, err
	}
	return property, nil
}

// Update applies the provided fields to an existing property.
func (p *Properties) Update(id uint, in PropertyUpdate) (*models.Property, error) {
	property, err := p.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Address != nil {
		if *in.Address == "" {
			return nil, Validationf("address is required")
		}
		property.Address = *in.Address
	}
	if in.Rent != nil {
		if *in.Rent < 0 {
			return nil, Validationf("rent must not be negative")
		}
		property.Rent = *in.Rent
	}
	if in.Maintenance != nil {
		if *in.Maintenance < 0 {
			return nil, Validationf("maintenance must not be negative")
		}
		property.Maintenance = *in.Maintenance
	}
	if err := p.store.SaveProperty(property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a property. Deletion is restricted: a property still
// referenced by tenants or transactions is not deletable.
func (p *Properties) Delete(id uint) error {
	if _, err := p.Get(id); err != nil {
		return err
	}
	tenants, err := p.store.CountTenantsByProperty(id)
	if err != nil {
		return err
	}
	if tenants > 0 {
		return Validationf("property %d still has %d tenant(s) assigned", id, tenants)
	}
	txs, err := p.store.CountTransactionsByProperty(id)
	if err != nil {
		return err
	}
	if txs > 0 {
		return Validationf("property %d still has %d transaction(s) recorded", id, txs)
	}
	if err := p.store.DeleteProperty(id); err != nil {
		return notFoundOr(err, "property", id)
	}
	return nil
}
