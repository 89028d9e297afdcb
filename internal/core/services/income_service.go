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

// incomeService implements portssvc.IncomeSvcFacade.
type incomeService struct {
	BaseService
	incomeRepo  portsrepo.IncomeReader
	txManager   portsrepo.TransactionManager
	coordinator portssvc.PaidStateCoordinatorSvc
	validate    *validator.Validate
}

// NewIncomeService creates a new income service.
func NewIncomeService(incomeRepo portsrepo.IncomeReader, txManager portsrepo.TransactionManager, coordinator portssvc.PaidStateCoordinatorSvc) portssvc.IncomeSvcFacade {
	return &incomeService{
		incomeRepo:  incomeRepo,
		txManager:   txManager,
		coordinator: coordinator,
		validate:    validation.New(),
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (domain.SaveResult[domain.Income], error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.SaveResult[domain.Income]{}, apperrors.WrapConsistencyError(err)
	}

	now := domain.Now()
	income := domain.Income{
		IncomeID:      uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Description:   req.Description,
		IsPaid:        req.IsPaid,
		Date:          dateOrDefault(req.Date, now),
		PaymentMethod: req.PaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var result domain.SaveResult[domain.Income]
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		if _, err := s.EnsureAccountOwner(ctx, uow.Accounts(), income.AccountID, userID); err != nil {
			return err
		}
		if err := uow.Incomes().SaveIncome(ctx, income); err != nil {
			return fmt.Errorf("failed to save income: %w", err)
		}

		settlement, err := s.coordinator.OnCreate(ctx, uow, income.PaidEntry())
		if err != nil {
			return err
		}
		result = incomeResult(income, settlement)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create income", income.IncomeID)
		return domain.SaveResult[domain.Income]{}, err
	}

	s.LogInfo(ctx, "Income created",
		slog.String("income_id", income.IncomeID),
		slog.String("status", string(result.Status)))
	return result, nil
}

func (s *incomeService) GetIncomeByID(ctx context.Context, incomeID string, userID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find income", incomeID)
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, income.UserID, userID, "income", incomeID); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (domain.SaveResult[domain.Income], error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.SaveResult[domain.Income]{}, apperrors.WrapConsistencyError(err)
	}

	var result domain.SaveResult[domain.Income]
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		// The row lock serializes concurrent updates of the same income.
		before, err := uow.Incomes().FindIncomeByIDForUpdate(ctx, incomeID)
		if err != nil {
			return err
		}
		if err := s.AuthorizeOwner(ctx, before.UserID, userID, "income", incomeID); err != nil {
			return err
		}

		after := applyIncomeUpdate(*before, req, userID, domain.Now())
		if after.AccountID != before.AccountID {
			if _, err := s.EnsureAccountOwner(ctx, uow.Accounts(), after.AccountID, userID); err != nil {
				return err
			}
		}
		if err := uow.Incomes().UpdateIncome(ctx, after); err != nil {
			return fmt.Errorf("failed to update income: %w", err)
		}

		settlement, err := s.coordinator.OnUpdate(ctx, uow, before.PaidEntry(), after.PaidEntry())
		if err != nil {
			return err
		}
		result = incomeResult(after, settlement)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update income", incomeID)
		return domain.SaveResult[domain.Income]{}, err
	}

	s.LogInfo(ctx, "Income updated",
		slog.String("income_id", incomeID),
		slog.String("status", string(result.Status)))
	return result, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, incomeID string, userID string) error {
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		income, err := uow.Incomes().FindIncomeByIDForUpdate(ctx, incomeID)
		if err != nil {
			return err
		}
		if err := s.AuthorizeOwner(ctx, income.UserID, userID, "income", incomeID); err != nil {
			return err
		}
		if _, err := s.coordinator.OnDelete(ctx, uow, income.PaidEntry()); err != nil {
			return err
		}
		return uow.Incomes().DeleteIncome(ctx, incomeID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete income", incomeID)
		return err
	}

	s.LogInfo(ctx, "Income deleted", slog.String("income_id", incomeID))
	return nil
}

func (s *incomeService) logFailure(ctx context.Context, err error, msg string, incomeID string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogWarn(ctx, msg, slog.String("income_id", incomeID), slog.String("reason", err.Error()))
		return
	}
	s.LogError(ctx, err, msg, slog.String("income_id", incomeID))
}

func applyIncomeUpdate(i domain.Income, req dto.UpdateIncomeRequest, userID string, now time.Time) domain.Income {
	if req.AccountID != nil {
		i.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		i.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		i.Amount = *req.Amount
	}
	if req.Description != nil {
		i.Description = *req.Description
	}
	if req.IsPaid != nil {
		i.IsPaid = *req.IsPaid
	}
	if req.Date != nil {
		i.Date = dateOrDefault(req.Date, i.Date)
	}
	if req.PaymentMethod != nil {
		i.PaymentMethod = *req.PaymentMethod
	}
	i.LastUpdatedAt = now
	i.LastUpdatedBy = userID
	return i
}

func incomeResult(i domain.Income, settlement domain.Settlement) domain.SaveResult[domain.Income] {
	if settlement.Rejected() {
		i.IsPaid = false
		return domain.PartiallySucceeded(i, settlement.Info)
	}
	return domain.Succeeded(i)
}
