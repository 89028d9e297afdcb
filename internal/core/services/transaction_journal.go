package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/google/uuid"
)

// transactionJournal implements portssvc.TransactionJournalSvc.
type transactionJournal struct {
	BaseService
	ledger portssvc.AccountLedgerSvc
}

// NewTransactionJournal creates a journal that applies balance effects through ledger.
func NewTransactionJournal(ledger portssvc.AccountLedgerSvc) portssvc.TransactionJournalSvc {
	return &transactionJournal{ledger: ledger}
}

var _ portssvc.TransactionJournalSvc = (*transactionJournal)(nil)

// Record stores txn and applies it to its account. Any error, including an overdraft,
// is returned as is; the caller's unit must roll back to discard the stored row.
func (j *transactionJournal) Record(ctx context.Context, uow portsrepo.UnitOfWork, txn domain.Transaction) (*domain.Transaction, error) {
	if !txn.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTransactionType, txn.TransactionType)
	}
	if txn.AccountID == "" {
		return nil, fmt.Errorf("%w: account id is required", apperrors.ErrInvalidArgument)
	}
	if txn.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)
	}
	if !txn.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidArgument, txn.Amount.String())
	}

	now := domain.Now()
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = now
	}
	if txn.SourceType == "" {
		txn.SourceType = domain.SourceManual
	}
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     txn.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: txn.UserID,
	}

	if err := uow.Transactions().SaveTransaction(ctx, txn); err != nil {
		j.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	var err error
	switch txn.TransactionType {
	case domain.Deposit:
		_, err = j.ledger.Credit(ctx, uow, txn.AccountID, txn.Amount, txn.UserID)
	case domain.Withdrawal:
		_, err = j.ledger.Debit(ctx, uow, txn.AccountID, txn.Amount, txn.UserID)
	}
	if err != nil {
		return nil, err
	}

	j.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (j *transactionJournal) RecordForExpense(ctx context.Context, uow portsrepo.UnitOfWork, expense domain.Expense, paid bool) (*domain.Transaction, error) {
	return j.RecordForEntry(ctx, uow, expense.PaidEntry(), paid)
}

func (j *transactionJournal) RecordForIncome(ctx context.Context, uow portsrepo.UnitOfWork, income domain.Income, paid bool) (*domain.Transaction, error) {
	return j.RecordForEntry(ctx, uow, income.PaidEntry(), paid)
}

func (j *transactionJournal) RecordForEntry(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry, paid bool) (*domain.Transaction, error) {
	if entry.ID == "" {
		return nil, fmt.Errorf("%w: %s id is required", apperrors.ErrInvalidArgument, entry.Kind)
	}
	return j.Record(ctx, uow, entry.SettlementTransaction(paid))
}
