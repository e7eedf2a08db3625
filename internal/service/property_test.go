package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyCRUD(t *testing.T) {
	s := setupStore(t)
	properties := NewProperties(s)

	created, err := properties.Create(PropertyInput{Address: "3 Lake View", Rent: 1500, Maintenance: 100})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "system", created.CreatedBy)

	got, err := properties.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "3 Lake View", got.Address)

	rent := 1600.0
	updated, err := properties.Update(created.ID, PropertyUpdate{Rent: &rent})
	require.NoError(t, err)
	assert.Equal(t, 1600.0, updated.Rent)
	assert.Equal(t, "3 Lake View", updated.Address, "untouched fields survive")

	require.NoError(t, properties.Delete(created.ID))
	_, err = properties.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropertyCreate_RequiresAddress(t *testing.T) {
	s := setupStore(t)
	properties := NewProperties(s)

	_, err := properties.Create(PropertyInput{Rent: 100})
	assert.True(t, IsValidation(err))

	_, err = properties.Create(PropertyInput{Address: "x", Rent: -1})
	assert.True(t, IsValidation(err))
}

func TestPropertyDelete_RestrictedWhileReferenced(t *testing.T) {
	s := setupStore(t)
	property, tenant := seed(t, s)
	properties := NewProperties(s)
	tenants := NewTenants(s)
	txs := NewTransactions(s)

	// Both tenants and transactions still reference the property.
	err := properties.Delete(property.ID)
	assert.True(t, IsValidation(err))

	// Tenant removal is itself restricted while its transactions exist.
	err = tenants.Delete(tenant.ID)
	assert.True(t, IsValidation(err))

	page, err := txs.List(TransactionListInput{})
	require.NoError(t, err)
	for _, tx := range page.Items {
		require.NoError(t, txs.Delete(tx.ID))
	}
	require.NoError(t, tenants.Delete(tenant.ID))
	require.NoError(t, properties.Delete(property.ID))
}

func TestPropertyGet_NotFound(t *testing.T) {
	s := setupStore(t)
	properties := NewProperties(s)

	_, err := properties.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
