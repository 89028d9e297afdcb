package mapping

import (
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		CategoryID:    ToNullString(d.CategoryID),
		Amount:        d.Amount,
		Description:   d.Description,
		IsPaid:        d.IsPaid,
		Date:          d.Date,
		PaymentMethod: ToNullString(d.PaymentMethod),
		ReceiptURL:    ToNullString(d.ReceiptURL),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    FromNullString(m.CategoryID),
		Amount:        m.Amount,
		Description:   m.Description,
		IsPaid:        m.IsPaid,
		Date:          m.Date.UTC(),
		PaymentMethod: FromNullString(m.PaymentMethod),
		ReceiptURL:    FromNullString(m.ReceiptURL),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
