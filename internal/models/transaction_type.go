package models

// TransactionType tags a transaction with its ledger category. The tag
// decides the sign of the amount when a balance is computed: payments
// received add, everything else is a charge and subtracts.
type TransactionType string

const (
	TypeRent            TransactionType = "rent"
	TypeSecurity        TransactionType = "security"
	TypePaymentReceived TransactionType = "payment_received"
	TypeGas             TransactionType = "gas"
	TypeElectricity     TransactionType = "electricity"
	TypeWater           TransactionType = "water"
	TypeMaintenance     TransactionType = "maintenance"
	TypeMisc            TransactionType = "misc"
)

// TransactionTypes lists every valid type tag.
func TransactionTypes() []TransactionType {
	return []TransactionType{
		TypeRent,
		TypeSecurity,
		TypePaymentReceived,
		TypeGas,
		TypeElectricity,
		TypeWater,
		TypeMaintenance,
		TypeMisc,
	}
}

// Valid reports whether t is one of the known type tags.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeRent, TypeSecurity, TypePaymentReceived, TypeGas,
		TypeElectricity, TypeWater, TypeMaintenance, TypeMisc:
		return true
	}
	return false
}
