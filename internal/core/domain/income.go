package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money entering an account. Once IsPaid is true the account has been credited.
type Income struct {
	IncomeID      string          `json:"incomeID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"` // Nullable
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	IsPaid        bool            `json:"isPaid"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"` // Nullable
	AuditFields
}

// PaidEntry returns the view of the income the ledger settles against.
func (i Income) PaidEntry() PaidEntry {
	return PaidEntry{
		Kind:        SourceIncome,
		ID:          i.IncomeID,
		UserID:      i.UserID,
		AccountID:   i.AccountID,
		Description: i.Description,
		Amount:      i.Amount,
		IsPaid:      i.IsPaid,
		Date:        i.Date,
	}
}
