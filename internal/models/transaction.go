package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the stored direction of a transaction.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction represents a row of the transactions table. Rows are never updated.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	UserID          string          `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"` // Positive
	TransactionType TransactionType `db:"transaction_type"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	SourceType      string          `db:"source_type"`
	SourceID        sql.NullString  `db:"source_id"` // NULL for manual transactions
	AuditFields
}
