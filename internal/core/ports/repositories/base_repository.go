package repositories

import (
	"context"
)

// UnitOfWork exposes repositories bound to one open database transaction.
// Everything written through it commits or rolls back together.
type UnitOfWork interface {
	Accounts() AccountRepositoryFacade
	Transactions() TransactionRepositoryFacade
	Expenses() ExpenseRepositoryFacade
	Incomes() IncomeRepositoryFacade

	// WithinSavepoint runs fn in a nested scope. If fn returns an error only the writes made
	// inside fn are undone; the surrounding unit stays usable.
	WithinSavepoint(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction opens a unit of work, commits it if fn returns nil and rolls it back otherwise.
	WithinTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
