package services

import (
	"context"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
)

// ReportingService defines operations for checking ledger health
type ReportingService interface {
	// ReconcileAccount compares the stored balance with opening balance plus transaction history.
	ReconcileAccount(ctx context.Context, accountID string, userID string) (*domain.AccountReconciliation, error)
}
