package service

import (
	"time"

	"github.com/javiator/tenant-management-applications/internal/models"
	"github.com/javiator/tenant-management-applications/internal/store"
)

const defaultTenantPerPage = 10

// TenantInput is the create payload for a tenant. Date fields travel as
// YYYY-MM-DD strings.
type TenantInput struct {
	Name               string       `json:"name" validate:"required"`
	PropertyID         *uint        `json:"property_id"`
	Passport           string       `json:"passport"`
	PassportValidity   *models.Date `json:"passport_validity"`
	AadharNo           string       `json:"aadhar_no"`
	EmploymentDetails  string       `json:"employment_details"`
	PermanentAddress   string       `json:"permanent_address"`
	ContactNo          string       `json:"contact_no"`
	EmergencyContactNo string       `json:"emergency_contact_no"`
	Rent               float64      `json:"rent" validate:"gte=0"`
	Security           float64      `json:"security" validate:"gte=0"`
	MoveInDate         *models.Date `json:"move_in_date"`
	ContractStartDate  *models.Date `json:"contract_start_date"`
	ContractExpiryDate *models.Date `json:"contract_expiry_date"`
}

// TenantUpdate is the partial update payload: only present fields change.
// Setting property_id to 0 clears the assignment.
type TenantUpdate struct {
	Name               *string      `json:"name"`
	PropertyID         *uint        `json:"property_id"`
	Passport           *string      `json:"passport"`
	PassportValidity   *models.Date `json:"passport_validity"`
	AadharNo           *string      `json:"aadhar_no"`
	EmploymentDetails  *string      `json:"employment_details"`
	PermanentAddress   *string      `json:"permanent_address"`
	ContactNo          *string      `json:"contact_no"`
	EmergencyContactNo *string      `json:"emergency_contact_no"`
	Rent               *float64     `json:"rent"`
	Security           *float64     `json:"security"`
	MoveInDate         *models.Date `json:"move_in_date"`
	ContractStartDate  *models.Date `json:"contract_start_date"`
	ContractExpiryDate *models.Date `json:"contract_expiry_date"`
}

// TenantPage is the paginated tenant listing envelope.
type TenantPage struct {
	Tenants     []models.TenantView `json:"tenants"`
	Total       int64               `json:"total"`
	Pages       int                 `json:"pages"`
	CurrentPage int                 `json:"current_page"`
	HasNext     bool                `json:"has_next"`
	HasPrev     bool                `json:"has_prev"`
}

// Tenants provides tenant CRUD.
type Tenants struct {
	store *store.Store
	now   func() time.Time
}

// NewTenants returns the tenant service using the wall clock.
func NewTenants(s *store.Store) *Tenants {
	return &Tenants{store: s, now: time.Now}
}

// NewTenantsWithClock returns the tenant service with an injected clock,
// used by tests to pin the expiring-soon evaluation date.
func NewTenantsWithClock(s *store.Store, now func() time.Time) *Tenants {
	return &Tenants{store: s, now: now}
}

// List returns one page of tenants. page and perPage below 1 are clamped to
// the defaults.
func (t *Tenants) List(page, perPage int) (*TenantPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultTenantPerPage
	}

	tenants, total, err := t.store.ListTenantsPage(page, perPage)
	if err != nil {
		return nil, err
	}

	now := t.now()
	views := make([]models.TenantView, len(tenants))
	for i := range tenants {
		views[i] = tenants[i].View(now)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &TenantPage{
		Tenants:     views,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		HasNext:     page < pages,
		HasPrev:     page > 1,
	}, nil
}

// ListAll returns every tenant as a view (reports).
func (t *Tenants) ListAll() ([]models.TenantView, error) {
	tenants, err := t.store.ListTenants()
	if err != nil {
		return nil, err
	}
	now := t.now()
	views := make([]models.TenantView, len(tenants))
	for i := range tenants {
		views[i] = tenants[i].View(now)
	}
	return views, nil
}

// Get returns one tenant by id.
func (t *Tenants) Get(id uint) (*models.TenantView, error) {
	tenant, err := t.store.GetTenant(id)
	if err != nil {
		return nil, notFoundOr(err, "tenant", id)
	}
	view := tenant.View(t.now())
	return &view, nil
}

// Create validates and inserts a new tenant.
func (t *Tenants) Create(in TenantInput) (*models.TenantView, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Validationf("invalid tenant: %v", err)
	}
	if err := t.checkProperty(in.PropertyID); err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		Name:               in.Name,
		PropertyID:         in.PropertyID,
		Passport:           in.Passport,
		PassportValidity:   in.PassportValidity,
		AadharNo:           in.AadharNo,
		EmploymentDetails:  in.EmploymentDetails,
		PermanentAddress:   in.PermanentAddress,
		ContactNo:          in.ContactNo,
		EmergencyContactNo: in.EmergencyContactNo,
		Rent:               in.Rent,
		Security:           in.Security,
		MoveInDate:         in.MoveInDate,
		ContractStartDate:  in.ContractStartDate,
		ContractExpiryDate: in.ContractExpiryDate,
	}
	if err := t.store.CreateTenant(tenant); err != nil {
		return nil, err
	}
	return t.Get(tenant.ID)
}

// Update applies the provided fields to an existing tenant.
func (t *Tenants) Update(id uint, in TenantUpdate) (*models.TenantView, error) {
	tenant, err := t.store.GetTenant(id)
	if err != nil {
		return nil, notFoundOr(err, "tenant", id)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, Validationf("name is required")
		}
		tenant.Name = *in.Name
	}
	if in.PropertyID != nil {
		if *in.PropertyID == 0 {
			tenant.PropertyID = nil
		} else {
			if err := t.checkProperty(in.PropertyID); err != nil {
				return nil, err
			}
			tenant.PropertyID = in.PropertyID
		}
		// Drop the stale preloaded association so Save does not resurrect it.
		tenant.Property = nil
	}
	if in.Passport != nil {
		tenant.Passport = *in.Passport
	}
	if in.PassportValidity != nil {
		tenant.PassportValidity = in.PassportValidity
	}
	if in.AadharNo != nil {
		tenant.AadharNo = *in.AadharNo
	}
	if in.EmploymentDetails != nil {
		tenant.EmploymentDetails = *in.EmploymentDetails
	}
	if in.PermanentAddress != nil {
		tenant.PermanentAddress = *in.PermanentAddress
	}
	if in.ContactNo != nil {
		tenant.ContactNo = *in.ContactNo
	}
	if in.EmergencyContactNo != nil {
		tenant.EmergencyContactNo = *in.EmergencyContactNo
	}
	if in.Rent != nil {
		if *in.Rent < 0 {
			return nil, Validationf("rent must not be negative")
		}
		tenant.Rent = *in.Rent
	}
	if in.Security != nil {
		if *in.Security < 0 {
			return nil, Validationf("security must not be negative")
		}
		tenant.Security = *in.Security
	}
	if in.MoveInDate != nil {
		tenant.MoveInDate = in.MoveInDate
	}
	if in.ContractStartDate != nil {
		tenant.ContractStartDate = in.ContractStartDate
	}
	if in.ContractExpiryDate != nil {
		tenant.ContractExpiryDate = in.ContractExpiryDate
	}

	if err := t.store.SaveTenant(tenant); err != nil {
		return nil, err
	}
	return t.Get(tenant.ID)
}

// Delete removes a tenant. Deletion is restricted while transactions still
// reference the tenant.
func (t *Tenants) Delete(id uint) error {
	if _, err := t.store.GetTenant(id); err != nil {
		return notFoundOr(err, "tenant", id)
	}
	txs, err := t.store.CountTransactionsByTenant(id)
	if err != nil {
		return err
	}
	if txs > 0 {
		return Validationf("tenant %d still has %d transaction(s) recorded", id, txs)
	}
	if err := t.store.DeleteTenant(id); err != nil {
		return notFoundOr(err, "tenant", id)
	}
	return nil
}

func (t *Tenants) checkProperty(id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := t.store.GetProperty(*id); err != nil {
		return Validationf("property %d does not exist", *id)
	}
	return nil
}
