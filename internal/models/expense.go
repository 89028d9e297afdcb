package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	CategoryID    sql.NullString  `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	IsPaid        bool            `db:"is_paid"`
	Date          time.Time       `db:"date"`
	PaymentMethod sql.NullString  `db:"payment_method"`
	ReceiptURL    sql.NullString  `db:"receipt_url"`
	AuditFields
}
