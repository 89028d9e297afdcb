package repositories

import (
	"context"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
)

// IncomeReader defines read operations for income data
type IncomeReader interface {
	// FindIncomeByID retrieves a specific income by its unique identifier.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// FindIncomeByIDForUpdate retrieves an income and holds its write lock until the unit ends.
	FindIncomeByIDForUpdate(ctx context.Context, incomeID string) (*domain.Income, error)
}

// IncomeWriter defines write operations for income data
type IncomeWriter interface {
	// SaveIncome persists a new income.
	SaveIncome(ctx context.Context, income domain.Income) error

	// UpdateIncome updates every mutable field of an existing income.
	UpdateIncome(ctx context.Context, income domain.Income) error

	// UpdateIncomePaid changes only the paid flag of an income.
	UpdateIncomePaid(ctx context.Context, incomeID string, isPaid bool, userID string, now time.Time) error

	// DeleteIncome removes an income.
	DeleteIncome(ctx context.Context, incomeID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
