package services

import (
	"context"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
)

// ExpenseSvcFacade defines the expense operations offered to handlers.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (domain.SaveResult[domain.Expense], error)
	GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (domain.SaveResult[domain.Expense], error)
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}
