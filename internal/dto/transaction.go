package dto

import (
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines a manual deposit or withdrawal against an account.
type CreateTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required,gt=0"`
	TransactionType string          `json:"transactionType" binding:"required"` // DEPOSIT or WITHDRAWAL
	Description     string          `json:"description" binding:"max=255"`
	TransactionDate *time.Time      `json:"transactionDate"` // Optional, defaults to now
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"` // DEPOSIT or WITHDRAWAL
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	SourceType      string          `json:"sourceType"`
	SourceID        *string         `json:"sourceID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing the transactions of an account.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		Type:            string(txn.TransactionType),
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		SourceType:      string(txn.SourceType),
		SourceID:        txn.SourceID,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
