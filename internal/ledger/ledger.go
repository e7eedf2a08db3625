// Package ledger computes signed balances over transaction histories.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/javiator/tenant-management-applications/internal/models"
)

// Balance returns the signed total for a set of transactions belonging to
// one owner. A received payment increases the collected balance; every
// other type is a charge and decreases it. Order of the input does not
// affect the result, and an empty input yields exactly 0.
//
// Amounts are accumulated as decimals so repeated float addition cannot
// drift the total.
func Balance(txs []models.Transaction) float64 {
	total := decimal.Zero
	for i := range txs {
		amount := decimal.NewFromFloat(txs[i].Amount)
		if txs[i].Type == models.TypePaymentReceived {
			total = total.Add(amount)
		} else {
			total = total.Sub(amount)
		}
	}
	f, _ := total.Float64()
	return f
}
