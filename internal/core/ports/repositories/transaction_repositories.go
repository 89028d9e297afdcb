package repositories

import (
	"context"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves a paginated list of transactions for a specific account using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsBySource retrieves every transaction produced by one expense or income, oldest first.
	ListTransactionsBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.Transaction, error)

	// SumTransactionsByAccountID totals deposits and withdrawals recorded against an account.
	SumTransactionsByAccountID(ctx context.Context, accountID string) (domain.TransactionTotals, error)
}

// TransactionWriter defines write operations for transaction data.
// Transactions are append-only: there is no update or delete.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
