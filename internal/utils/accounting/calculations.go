package accounting

import (
	"fmt"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the sign of a transaction type to a positive amount.
// DEPOSIT adds to the balance, WITHDRAWAL subtracts from it.
// This is used in both services and repositories to ensure consistent balance math.
func CalculateSignedAmount(txnType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("transaction amount must be positive, got %s", amount.String())
	}
	switch txnType {
	case domain.Deposit:
		return amount, nil
	case domain.Withdrawal:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txnType)
	}
}

// SumTransactions totals deposits and withdrawals of a transaction list.
func SumTransactions(transactions []domain.Transaction) (domain.TransactionTotals, error) {
	totals := domain.TransactionTotals{Deposits: decimal.Zero, Withdrawals: decimal.Zero}
	for _, txn := range transactions {
		signed, err := CalculateSignedAmount(txn.TransactionType, txn.Amount)
		if err != nil {
			return domain.TransactionTotals{}, fmt.Errorf("error summing transaction %s: %w", txn.TransactionID, err)
		}
		if signed.IsNegative() {
			totals.Withdrawals = totals.Withdrawals.Add(txn.Amount)
		} else {
			totals.Deposits = totals.Deposits.Add(txn.Amount)
		}
		totals.Count++
	}
	return totals, nil
}

// NetChange is the total balance delta of a transaction list.
func NetChange(transactions []domain.Transaction) (decimal.Decimal, error) {
	totals, err := SumTransactions(transactions)
	if err != nil {
		return decimal.Zero, err
	}
	return totals.Deposits.Sub(totals.Withdrawals), nil
}
