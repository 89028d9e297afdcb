package repositories

import (
	"context"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves a paginated list of accounts owned by a user.
	ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceSupport defines the locked read-check-write used by the ledger.
// Both methods must be called on a repository bound to an open unit of work.
type AccountBalanceSupport interface {
	// FindAccountByIDForUpdate selects the account and holds its write lock until the unit ends.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// UpdateAccountBalance stores the new balance of a locked account.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceSupport
}
