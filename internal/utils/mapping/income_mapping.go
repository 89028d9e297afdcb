package mapping

import (
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:      d.IncomeID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		CategoryID:    ToNullString(d.CategoryID),
		Amount:        d.Amount,
		Description:   d.Description,
		IsPaid:        d.IsPaid,
		Date:          d.Date,
		PaymentMethod: ToNullString(d.PaymentMethod),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:      m.IncomeID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    FromNullString(m.CategoryID),
		Amount:        m.Amount,
		Description:   m.Description,
		IsPaid:        m.IsPaid,
		Date:          m.Date.UTC(),
		PaymentMethod: FromNullString(m.PaymentMethod),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
