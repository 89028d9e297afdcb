package services

import (
	"context"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
)

// IncomeSvcFacade defines the income operations offered to handlers.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (domain.SaveResult[domain.Income], error)
	GetIncomeByID(ctx context.Context, incomeID string, userID string) (*domain.Income, error)
	UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (domain.SaveResult[domain.Income], error)
	DeleteIncome(ctx context.Context, incomeID string, userID string) error
}
