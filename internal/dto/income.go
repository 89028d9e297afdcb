package dto

import (
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income.
type CreateIncomeRequest struct {
	AccountID     string          `json:"accountID" binding:"required"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description   string          `json:"description" binding:"required,max=255"`
	IsPaid        bool            `json:"isPaid"`
	Date          *time.Time      `json:"date"` // Optional, defaults to now
	PaymentMethod string          `json:"paymentMethod" binding:"max=50"`
}

// UpdateIncomeRequest defines the fields allowed for updating an income.
type UpdateIncomeRequest struct {
	AccountID     *string          `json:"accountID"`
	CategoryID    *string          `json:"categoryID"`
	Amount        *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Description   *string          `json:"description" binding:"omitempty,max=255"`
	IsPaid        *bool            `json:"isPaid"`
	Date          *time.Time       `json:"date"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,max=50"`
}

// IncomeResponse defines the data returned for an income.
type IncomeResponse struct {
	IncomeID      string          `json:"incomeID"`
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	IsPaid        bool            `json:"isPaid"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO.
func ToIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:      i.IncomeID,
		AccountID:     i.AccountID,
		CategoryID:    i.CategoryID,
		Amount:        i.Amount,
		Description:   i.Description,
		IsPaid:        i.IsPaid,
		Date:          i.Date,
		PaymentMethod: i.PaymentMethod,
		CreatedAt:     i.CreatedAt,
		CreatedBy:     i.CreatedBy,
		LastUpdatedAt: i.LastUpdatedAt,
		LastUpdatedBy: i.LastUpdatedBy,
	}
}
