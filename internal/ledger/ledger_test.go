package ledger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javiator/tenant-management-applications/internal/models"
)

func tx(typ models.TransactionType, amount float64) models.Transaction {
	return models.Transaction{Type: typ, Amount: amount}
}

func TestBalance_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Balance(nil))
	assert.Equal(t, 0.0, Balance([]models.Transaction{}))
}

func TestBalance_SignRule(t *testing.T) {
	// rent due 1000, payment 1000, electricity 50 => -1000 + 1000 - 50
	txs := []models.Transaction{
		tx(models.TypeRent, 1000),
		tx(models.TypePaymentReceived, 1000),
		tx(models.TypeElectricity, 50),
	}
	assert.Equal(t, -50.0, Balance(txs))
}

func TestBalance_OnlyPaymentsArePositive(t *testing.T) {
	for _, typ := range models.TransactionTypes() {
		got := Balance([]models.Transaction{tx(typ, 75)})
		if typ == models.TypePaymentReceived {
			assert.Equal(t, 75.0, got, "type %s", typ)
		} else {
			assert.Equal(t, -75.0, got, "type %s", typ)
		}
	}
}

func TestBalance_OrderIndependent(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeRent, 1200.50),
		tx(models.TypePaymentReceived, 1200.50),
		tx(models.TypeWater, 30.25),
		tx(models.TypeGas, 14.10),
		tx(models.TypePaymentReceived, 44.35),
		tx(models.TypeMisc, 0.01),
	}
	want := Balance(txs)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(txs), func(a, b int) { txs[a], txs[b] = txs[b], txs[a] })
		assert.Equal(t, want, Balance(txs))
	}
}

func TestBalance_NoFloatDrift(t *testing.T) {
	// 0.1 charged ten times against a payment of 1.0 must cancel exactly.
	txs := []models.Transaction{tx(models.TypePaymentReceived, 1.0)}
	for i := 0; i < 10; i++ {
		txs = append(txs, tx(models.TypeMisc, 0.1))
	}
	assert.Equal(t, 0.0, Balance(txs))
}
