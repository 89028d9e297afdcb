package domain

import (
	"github.com/shopspring/decimal"
)

// AccountReconciliation compares a stored balance with the one implied by its transaction history.
type AccountReconciliation struct {
	AccountID        string          `json:"accountID"`
	AccountName      string          `json:"accountName"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TransactionCount int             `json:"transactionCount"`
	ExpectedBalance  decimal.Decimal `json:"expectedBalance"` // Opening + deposits - withdrawals
	StoredBalance    decimal.Decimal `json:"storedBalance"`
	Difference       decimal.Decimal `json:"difference"` // Stored - expected
	IsBalanced       bool            `json:"isBalanced"`
}

// TransactionTotals are the per-type sums of an account's transactions.
type TransactionTotals struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Count       int
}

// Reconcile builds the reconciliation of acc against totals.
func Reconcile(acc Account, totals TransactionTotals) AccountReconciliation {
	expected := acc.OpeningBalance.Add(totals.Deposits).Sub(totals.Withdrawals)
	diff := acc.Balance.Sub(expected)
	return AccountReconciliation{
		AccountID:        acc.AccountID,
		AccountName:      acc.Name,
		OpeningBalance:   acc.OpeningBalance,
		TotalDeposits:    totals.Deposits,
		TotalWithdrawals: totals.Withdrawals,
		TransactionCount: totals.Count,
		ExpectedBalance:  expected,
		StoredBalance:    acc.Balance,
		Difference:       diff,
		IsBalanced:       diff.IsZero(),
	}
}
