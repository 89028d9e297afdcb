package dto

import (
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	AccountID     string          `json:"accountID" binding:"required"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description   string          `json:"description" binding:"required,max=255"`
	IsPaid        bool            `json:"isPaid"`
	Date          *time.Time      `json:"date"` // Optional, defaults to now
	PaymentMethod string          `json:"paymentMethod" binding:"max=50"`
	ReceiptURL    string          `json:"receiptURL" binding:"omitempty,url"`
}

// UpdateExpenseRequest defines the fields allowed for updating an expense.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	AccountID     *string          `json:"accountID"`
	CategoryID    *string          `json:"categoryID"`
	Amount        *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Description   *string          `json:"description" binding:"omitempty,max=255"`
	IsPaid        *bool            `json:"isPaid"`
	Date          *time.Time       `json:"date"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,max=50"`
	ReceiptURL    *string          `json:"receiptURL" binding:"omitempty,url"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	IsPaid        bool            `json:"isPaid"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptURL    string          `json:"receiptURL"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		AccountID:     e.AccountID,
		CategoryID:    e.CategoryID,
		Amount:        e.Amount,
		Description:   e.Description,
		IsPaid:        e.IsPaid,
		Date:          e.Date,
		PaymentMethod: e.PaymentMethod,
		ReceiptURL:    e.ReceiptURL,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}
