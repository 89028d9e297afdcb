package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaidEntry is the part of an expense or income that drives balance changes.
type PaidEntry struct {
	Kind        SourceType
	ID          string
	UserID      string
	AccountID   string
	Description string
	Amount      decimal.Decimal
	IsPaid      bool
	Date        time.Time
}

// ForwardType is the transaction type produced when the entry becomes paid.
func (p PaidEntry) ForwardType() TransactionType {
	if p.Kind == SourceIncome {
		return Deposit
	}
	return Withdrawal
}

// SignedAmount is the net balance effect the entry must have on its account.
// It is zero while the entry is unpaid.
func (p PaidEntry) SignedAmount() decimal.Decimal {
	if !p.IsPaid {
		return decimal.Zero
	}
	if p.Kind == SourceIncome {
		return p.Amount
	}
	return p.Amount.Neg()
}

// SettlementTransaction builds the transaction that moves the entry into the given paid state.
// paid=true produces the forward effect, paid=false the reversal.
func (p PaidEntry) SettlementTransaction(paid bool) Transaction {
	txnType := p.ForwardType()
	description := p.label()
	date := p.Date
	if !paid {
		txnType = txnType.Opposite()
		description = "Reversal: " + description
		date = time.Time{}
	}

	id := p.ID
	return Transaction{
		AccountID:       p.AccountID,
		UserID:          p.UserID,
		Amount:          p.Amount,
		TransactionType: txnType,
		Description:     description,
		TransactionDate: date,
		SourceType:      p.Kind,
		SourceID:        &id,
	}
}

func (p PaidEntry) label() string {
	kind := "Expense"
	if p.Kind == SourceIncome {
		kind = "Income"
	}
	if p.Description == "" {
		return fmt.Sprintf("%s %s", kind, p.ID)
	}
	return fmt.Sprintf("%s: %s", kind, p.Description)
}
