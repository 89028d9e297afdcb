package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// expenseService implements portssvc.ExpenseSvcFacade.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
	txManager   portsrepo.TransactionManager
	coordinator portssvc.PaidStateCoordinatorSvc
	validate    *validator.Validate
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseReader, txManager portsrepo.TransactionManager, coordinator portssvc.PaidStateCoordinatorSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		txManager:   txManager,
		coordinator: coordinator,
		validate:    validation.New(),
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (domain.SaveResult[domain.Expense], error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.SaveResult[domain.Expense]{}, apperrors.WrapConsistencyError(err)
	}

	now := domain.Now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Description:   req.Description,
		IsPaid:        req.IsPaid,
		Date:          dateOrDefault(req.Date, now),
		PaymentMethod: req.PaymentMethod,
		ReceiptURL:    req.ReceiptURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var result domain.SaveResult[domain.Expense]
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		if _, err := s.EnsureAccountOwner(ctx, uow.Accounts(), expense.AccountID, userID); err != nil {
			return err
		}
		if err := uow.Expenses().SaveExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}

		settlement, err := s.coordinator.OnCreate(ctx, uow, expense.PaidEntry())
		if err != nil {
			return err
		}
		result = expenseResult(expense, settlement)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create expense", expense.ExpenseID)
		return domain.SaveResult[domain.Expense]{}, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(result.Status)))
	return result, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find expense", expenseID)
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, expense.UserID, userID, "expense", expenseID); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (domain.SaveResult[domain.Expense], error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.SaveResult[domain.Expense]{}, apperrors.WrapConsistencyError(err)
	}

	var result domain.SaveResult[domain.Expense]
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		// The row lock serializes concurrent updates of the same expense.
		before, err := uow.Expenses().FindExpenseByIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		if err := s.AuthorizeOwner(ctx, before.UserID, userID, "expense", expenseID); err != nil {
			return err
		}

		after := applyExpenseUpdate(*before, req, userID, domain.Now())
		if after.AccountID != before.AccountID {
			if _, err := s.EnsureAccountOwner(ctx, uow.Accounts(), after.AccountID, userID); err != nil {
				return err
			}
		}
		if err := uow.Expenses().UpdateExpense(ctx, after); err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}

		settlement, err := s.coordinator.OnUpdate(ctx, uow, before.PaidEntry(), after.PaidEntry())
		if err != nil {
			return err
		}
		result = expenseResult(after, settlement)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update expense", expenseID)
		return domain.SaveResult[domain.Expense]{}, err
	}

	s.LogInfo(ctx, "Expense updated",
		slog.String("expense_id", expenseID),
		slog.String("status", string(result.Status)))
	return result, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		expense, err := uow.Expenses().FindExpenseByIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		if err := s.AuthorizeOwner(ctx, expense.UserID, userID, "expense", expenseID); err != nil {
			return err
		}
		if _, err := s.coordinator.OnDelete(ctx, uow, expense.PaidEntry()); err != nil {
			return err
		}
		return uow.Expenses().DeleteExpense(ctx, expenseID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete expense", expenseID)
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) logFailure(ctx context.Context, err error, msg string, expenseID string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogWarn(ctx, msg, slog.String("expense_id", expenseID), slog.String("reason", err.Error()))
		return
	}
	s.LogError(ctx, err, msg, slog.String("expense_id", expenseID))
}

func applyExpenseUpdate(e domain.Expense, req dto.UpdateExpenseRequest, userID string, now time.Time) domain.Expense {
	if req.AccountID != nil {
		e.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		e.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.IsPaid != nil {
		e.IsPaid = *req.IsPaid
	}
	if req.Date != nil {
		e.Date = dateOrDefault(req.Date, e.Date)
	}
	if req.PaymentMethod != nil {
		e.PaymentMethod = *req.PaymentMethod
	}
	if req.ReceiptURL != nil {
		e.ReceiptURL = *req.ReceiptURL
	}
	e.LastUpdatedAt = now
	e.LastUpdatedBy = userID
	return e
}

func expenseResult(e domain.Expense, settlement domain.Settlement) domain.SaveResult[domain.Expense] {
	if settlement.Rejected() {
		e.IsPaid = false
		return domain.PartiallySucceeded(e, settlement.Info)
	}
	return domain.Succeeded(e)
}
