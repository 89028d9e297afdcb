package dto

import (
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Description    string          `json:"description"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit" binding:"gte=0"` // Zero disables overdraft
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Balance        decimal.Decimal `json:"balance"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Available      decimal.Decimal `json:"available"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Description:    acc.Description,
		Balance:        acc.Balance,
		OverdraftLimit: acc.OverdraftLimit,
		OpeningBalance: acc.OpeningBalance,
		Available:      acc.Available(),
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc) // Reuse the single converter
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ReconciliationResponse reports whether an account balance matches its history.
type ReconciliationResponse struct {
	AccountID        string          `json:"accountID"`
	AccountName      string          `json:"accountName"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TransactionCount int             `json:"transactionCount"`
	ExpectedBalance  decimal.Decimal `json:"expectedBalance"`
	StoredBalance    decimal.Decimal `json:"storedBalance"`
	Difference       decimal.Decimal `json:"difference"`
	IsBalanced       bool            `json:"isBalanced"`
}

// ToReconciliationResponse converts a domain reconciliation to its DTO.
func ToReconciliationResponse(r *domain.AccountReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		AccountID:        r.AccountID,
		AccountName:      r.AccountName,
		OpeningBalance:   r.OpeningBalance,
		TotalDeposits:    r.TotalDeposits,
		TotalWithdrawals: r.TotalWithdrawals,
		TransactionCount: r.TransactionCount,
		ExpectedBalance:  r.ExpectedBalance,
		StoredBalance:    r.StoredBalance,
		Difference:       r.Difference,
		IsBalanced:       r.IsBalanced,
	}
}
