package mapping

import (
	"database/sql"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var sourceID sql.NullString
	if d.SourceID != nil {
		sourceID = sql.NullString{String: *d.SourceID, Valid: true}
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		SourceType:      string(d.SourceType),
		SourceID:        sourceID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var sourceID *string
	if m.SourceID.Valid {
		id := m.SourceID.String
		sourceID = &id
	}
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Description:     m.Description,
		TransactionDate: m.TransactionDate.UTC(),
		SourceType:      domain.SourceType(m.SourceType),
		SourceID:        sourceID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
