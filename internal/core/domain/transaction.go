package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from an account balance.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Deposit || t == Withdrawal
}

// Opposite returns the type that undoes t.
func (t TransactionType) Opposite() TransactionType {
	if t == Deposit {
		return Withdrawal
	}
	return Deposit
}

// SourceType names the kind of record that caused a transaction.
type SourceType string

const (
	SourceExpense SourceType = "EXPENSE"
	SourceIncome  SourceType = "INCOME"
	SourceManual  SourceType = "MANUAL"
)

// Transaction is the append-only audit record of one balance change.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	AccountID       string          `json:"accountID"`       // FK -> Account.accountID (Not Null)
	UserID          string          `json:"userID"`          // Owner of the account
	Amount          decimal.Decimal `json:"amount"`          // Always positive
	TransactionType TransactionType `json:"transactionType"` // DEPOSIT or WITHDRAWAL
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	SourceType      SourceType      `json:"sourceType"`
	SourceID        *string         `json:"sourceID,omitempty"` // Expense or income that produced it, nil for manual entries
	AuditFields
}

// SignedAmount returns the balance delta caused by the transaction.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
