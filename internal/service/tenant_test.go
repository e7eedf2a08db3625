package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiator/tenant-management-applications/internal/models"
)

func TestTenantCreate_ChecksPropertyReference(t *testing.T) {
	s := setupStore(t)
	tenants := NewTenants(s)

	bogus := uint(9999)
	_, err := tenants.Create(TenantInput{Name: "Asha", PropertyID: &bogus})
	assert.True(t, IsValidation(err))

	_, err = tenants.Create(TenantInput{})
	assert.True(t, IsValidation(err), "name is required")

	// Unassigned tenants are allowed.
	created, err := tenants.Create(TenantInput{Name: "Asha"})
	require.NoError(t, err)
	assert.Nil(t, created.PropertyID)
	assert.Equal(t, models.NA, created.PropertyAddress)
}

func TestTenantList_PaginationEnvelope(t *testing.T) {
	s := setupStore(t)
	tenants := NewTenants(s)

	for _, name := range []string{"A", "B", "C"} {
		_, err := tenants.Create(TenantInput{Name: name})
		require.NoError(t, err)
	}

	page, err := tenants.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Tenants, 2)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	page, err = tenants.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Tenants, 1)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestTenantUpdate_ReassignAndClearProperty(t *testing.T) {
	s := setupStore(t)
	property, _ := seed(t, s)
	tenants := NewTenants(s)

	created, err := tenants.Create(TenantInput{Name: "Ravi"})
	require.NoError(t, err)

	updated, err := tenants.Update(created.ID, TenantUpdate{PropertyID: &property.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.PropertyID)
	assert.Equal(t, property.Address, updated.PropertyAddress)

	zero := uint(0)
	updated, err = tenants.Update(created.ID, TenantUpdate{PropertyID: &zero})
	require.NoError(t, err)
	assert.Nil(t, updated.PropertyID)
	assert.Equal(t, models.NA, updated.PropertyAddress)
}

func TestTenantExpiringSoonFlag(t *testing.T) {
	s := setupStore(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tenants := NewTenantsWithClock(s, func() time.Time { return now })

	soon := models.NewDate(now.AddDate(0, 0, 45))
	later := models.NewDate(now.AddDate(0, 0, 75))

	flagged, err := tenants.Create(TenantInput{Name: "Soon", ContractExpiryDate: &soon})
	require.NoError(t, err)
	assert.True(t, flagged.ExpiringSoon)

	calm, err := tenants.Create(TenantInput{Name: "Later", ContractExpiryDate: &later})
	require.NoError(t, err)
	assert.False(t, calm.ExpiringSoon)
}
