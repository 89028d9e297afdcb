package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money leaving an account. Once IsPaid is true the account has been debited.
type Expense struct {
	ExpenseID     string          `json:"expenseID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"` // Nullable
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	IsPaid        bool            `json:"isPaid"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"` // Nullable
	ReceiptURL    string          `json:"receiptURL"`    // Nullable
	AuditFields
}

// PaidEntry returns the view of the expense the ledger settles against.
func (e Expense) PaidEntry() PaidEntry {
	return PaidEntry{
		Kind:        SourceExpense,
		ID:          e.ExpenseID,
		UserID:      e.UserID,
		AccountID:   e.AccountID,
		Description: e.Description,
		Amount:      e.Amount,
		IsPaid:      e.IsPaid,
		Date:        e.Date,
	}
}
