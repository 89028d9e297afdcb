package repositories

import (
	"context"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenseByIDForUpdate retrieves an expense and holds its write lock until the unit ends.
	FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates every mutable field of an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpensePaid changes only the paid flag of an expense.
	UpdateExpensePaid(ctx context.Context, expenseID string, isPaid bool, userID string, now time.Time) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
