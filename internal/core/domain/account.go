package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account whose balance is kept by the ledger.
// Balance is never written directly; it only moves through ledger credits and debits.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	UserID         string          `json:"userID"`         // Owner
	Name           string          `json:"name"`           // Unique per owner
	Description    string          `json:"description"`    // Nullable user description
	Balance        decimal.Decimal `json:"balance"`        // Signed, may go negative down to -OverdraftLimit
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"` // Non-negative, zero disables overdraft
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Immutable, used for reconciliation
	AuditFields
}

// CanDebit reports whether amount can be subtracted without breaking balance >= -overdraftLimit.
func (a Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.Sub(amount).GreaterThanOrEqual(a.OverdraftLimit.Neg())
}

// Available is the largest amount that can currently be debited.
func (a Account) Available() decimal.Decimal {
	return a.Balance.Add(a.OverdraftLimit)
}

// IsOwnedBy reports whether the account belongs to userID.
func (a Account) IsOwnedBy(userID string) bool {
	return a.UserID == userID
}
