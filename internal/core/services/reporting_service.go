package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service
func NewReportingService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ReconcileAccount compares the stored balance with opening balance plus transaction history.
func (s *reportingService) ReconcileAccount(ctx context.Context, accountID string, userID string) (*domain.AccountReconciliation, error) {
	account, err := s.EnsureAccountOwner(ctx, s.accountRepo, accountID, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.txnRepo.SumTransactionsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	rec := domain.Reconcile(*account, totals)
	if !rec.IsBalanced {
		s.LogWarn(ctx, "Account balance does not match its transactions",
			slog.String("account_id", accountID),
			slog.String("stored", rec.StoredBalance.String()),
			slog.String("expected", rec.ExpectedBalance.String()))
	}
	return &rec, nil
}
