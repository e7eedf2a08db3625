package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiator/tenant-management-applications/internal/migrate"
	"github.com/javiator/tenant-management-applications/internal/models"
	"github.com/javiator/tenant-management-applications/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, migrate.New(s.DB()).Up())
	return s
}

func f(v float64) *float64 { return &v }

func seed(t *testing.T, s *store.Store) (*models.Property, *models.TenantView) {
	t.Helper()
	properties := NewProperties(s)
	tenants := NewTenants(s)
	txs := NewTransactions(s)

	property, err := properties.Create(PropertyInput{Address: "12 Hill Road", Rent: 1000})
	require.NoError(t, err)
	tenant, err := tenants.Create(TenantInput{Name: "Asha", PropertyID: &property.ID})
	require.NoError(t, err)

	for _, in := range []TransactionInput{
		{PropertyID: property.ID, TenantID: &tenant.ID, Type: "rent", Amount: f(1000)},
		{PropertyID: property.ID, TenantID: &tenant.ID, Type: "payment_received", Amount: f(1000)},
		{PropertyID: property.ID, TenantID: &tenant.ID, Type: "electricity", Amount: f(50)},
	} {
		_, err := txs.Create(in)
		require.NoError(t, err)
	}
	return property, tenant
}

func TestList_RejectsUnknownTypeAndSortKey(t *testing.T) {
	s := setupStore(t)
	txs := NewTransactions(s)

	_, err := txs.List(TransactionListInput{Type: "bribe"})
	assert.True(t, IsValidation(err))

	_, err = txs.List(TransactionListInput{SortBy: "comments; drop table transactions"})
	assert.True(t, IsValidation(err))

	_, err = txs.List(TransactionListInput{SortDirection: "sideways"})
	assert.True(t, IsValidation(err))

	_, err = txs.List(TransactionListInput{PropertyID: "twelve"})
	assert.True(t, IsValidation(err))
}

func TestList_AllSentinelAndDefaults(t *testing.T) {
	s := setupStore(t)
	seed(t, s)
	txs := NewTransactions(s)

	page, err := txs.List(TransactionListInput{Type: "all", PropertyID: "all"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PerPage)
	assert.Equal(t, 1, page.TotalPages)
}

func TestList_PerPageClampAndTotalPages(t *testing.T) {
	s := setupStore(t)
	seed(t, s)
	txs := NewTransactions(s)

	// per_page <= 0 is clamped to the default.
	page, err := txs.List(TransactionListInput{PerPage: -5})
	require.NoError(t, err)
	assert.Equal(t, 50, page.PerPage)

	// total_pages == ceil(total_items / per_page)
	page, err = txs.List(TransactionListInput{PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.EqualValues(t, 3, page.TotalItems)

	// Past the last page: empty items, accurate totals.
	page, err = txs.List(TransactionListInput{PerPage: 2, Page: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalPages)
	assert.EqualValues(t, 3, page.TotalItems)
}

func TestList_DenormalizedFields(t *testing.T) {
	s := setupStore(t)
	property, _ := seed(t, s)
	txs := NewTransactions(s)

	page, err := txs.List(TransactionListInput{})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	assert.Equal(t, property.Address, page.Items[0].PropertyAddress)
	assert.Equal(t, "Asha", page.Items[0].TenantName)
}

func TestOwnerLedgers(t *testing.T) {
	s := setupStore(t)
	property, tenant := seed(t, s)
	txs := NewTransactions(s)

	led, err := txs.PropertyLedger(property.ID)
	require.NoError(t, err)
	assert.Len(t, led.Transactions, 3)
	assert.Equal(t, -50.0, led.Total)

	led, err = txs.TenantLedger(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, -50.0, led.Total)

	_, err = txs.PropertyLedger(9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = txs.TenantLedger(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	s := setupStore(t)
	property, _ := seed(t, s)
	txs := NewTransactions(s)

	_, err := txs.Create(TransactionInput{PropertyID: property.ID, Type: "bribe", Amount: f(10)})
	assert.True(t, IsValidation(err))

	_, err = txs.Create(TransactionInput{PropertyID: property.ID, Type: "rent"})
	assert.True(t, IsValidation(err), "missing amount")

	_, err = txs.Create(TransactionInput{PropertyID: property.ID, Type: "rent", Amount: f(-10)})
	assert.True(t, IsValidation(err), "negative magnitude")

	_, err = txs.Create(TransactionInput{PropertyID: 9999, Type: "rent", Amount: f(10)})
	assert.True(t, IsValidation(err), "unknown property")

	bogus := uint(9999)
	_, err = txs.Create(TransactionInput{PropertyID: property.ID, TenantID: &bogus, Type: "rent", Amount: f(10)})
	assert.True(t, IsValidation(err), "unknown tenant")
}

func TestCreate_DefaultsDateToToday(t *testing.T) {
	s := setupStore(t)
	property, _ := seed(t, s)
	txs := NewTransactions(s)

	created, err := txs.Create(TransactionInput{PropertyID: property.ID, Type: "misc", Amount: f(5)})
	require.NoError(t, err)
	assert.Equal(t, models.Today().String(), created.TransactionDate.String())
}

func TestUpdate_PartialAndClearTenant(t *testing.T) {
	s := setupStore(t)
	property, tenant := seed(t, s)
	txs := NewTransactions(s)

	created, err := txs.Create(TransactionInput{
		PropertyID: property.ID, TenantID: &tenant.ID, Type: "gas", Amount: f(20), ForMonth: "Jan-2026",
	})
	require.NoError(t, err)

	amount := 25.0
	updated, err := txs.Update(created.ID, TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Amount)
	assert.Equal(t, "Jan-2026", updated.ForMonth, "untouched fields survive")
	assert.Equal(t, "Asha", updated.TenantName)

	// tenant_id: 0 clears the assignment
	zero := uint(0)
	updated, err = txs.Update(created.ID, TransactionUpdate{TenantID: &zero})
	require.NoError(t, err)
	assert.Nil(t, updated.TenantID)
	assert.Equal(t, models.NA, updated.TenantName)
}

func TestDelete_Transaction(t *testing.T) {
	s := setupStore(t)
	property, _ := seed(t, s)
	txs := NewTransactions(s)

	created, err := txs.Create(TransactionInput{PropertyID: property.ID, Type: "misc", Amount: f(1)})
	require.NoError(t, err)

	require.NoError(t, txs.Delete(created.ID))
	assert.ErrorIs(t, txs.Delete(created.ID), ErrNotFound)
}
