package domain_test

import (
	"testing"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.TransactionType
		want bool
	}{
		{name: "deposit", typ: domain.Deposit, want: true},
		{name: "withdrawal", typ: domain.Withdrawal, want: true},
		{name: "empty", typ: "", want: false},
		{name: "lowercase deposit", typ: "deposit", want: false},
		{name: "legacy debit", typ: "DEBIT", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.IsValid())
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	deposit := domain.Transaction{Amount: decimal.NewFromInt(30), TransactionType: domain.Deposit}
	withdrawal := domain.Transaction{Amount: decimal.NewFromInt(30), TransactionType: domain.Withdrawal}

	assert.True(t, deposit.SignedAmount().Equal(decimal.NewFromInt(30)))
	assert.True(t, withdrawal.SignedAmount().Equal(decimal.NewFromInt(-30)))
	assert.True(t, deposit.SignedAmount().Add(withdrawal.SignedAmount()).IsZero())
	assert.Equal(t, domain.Withdrawal, domain.Deposit.Opposite())
	assert.Equal(t, domain.Deposit, domain.Withdrawal.Opposite())
}

func TestAccount_CanDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		limit   int64
		amount  int64
		want    bool
	}{
		{name: "within balance", balance: 100, limit: 0, amount: 50, want: true},
		{name: "exactly to zero", balance: 100, limit: 0, amount: 100, want: true},
		{name: "beyond balance without overdraft", balance: 100, limit: 0, amount: 150, want: false},
		{name: "into overdraft", balance: 50, limit: 20, amount: 70, want: true},
		{name: "beyond overdraft", balance: 50, limit: 20, amount: 71, want: false},
		{name: "already negative", balance: -10, limit: 20, amount: 10, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := domain.Account{Balance: decimal.NewFromInt(tt.balance), OverdraftLimit: decimal.NewFromInt(tt.limit)}
			assert.Equal(t, tt.want, acc.CanDebit(decimal.NewFromInt(tt.amount)))
		})
	}
}
