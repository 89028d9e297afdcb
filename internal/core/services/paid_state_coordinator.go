package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
)

// paidStateCoordinator implements portssvc.PaidStateCoordinatorSvc.
//
// Forward effects (a record becoming paid) run inside a savepoint. When the ledger refuses
// them for lack of funds the savepoint is rolled back, the record is stored as unpaid and a
// Rejected settlement is returned. Reversals run directly in the caller's unit; a reversal the
// ledger refuses is a validation error.
type paidStateCoordinator struct {
	BaseService
	journal portssvc.TransactionJournalSvc
}

// NewPaidStateCoordinator creates a coordinator recording through journal.
func NewPaidStateCoordinator(journal portssvc.TransactionJournalSvc) portssvc.PaidStateCoordinatorSvc {
	return &paidStateCoordinator{journal: journal}
}

var _ portssvc.PaidStateCoordinatorSvc = (*paidStateCoordinator)(nil)

func (c *paidStateCoordinator) OnCreate(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error) {
	if !entry.IsPaid {
		return unchanged(), nil
	}
	return c.settleForward(ctx, uow, entry, nil)
}

func (c *paidStateCoordinator) OnUpdate(ctx context.Context, uow portsrepo.UnitOfWork, before, after domain.PaidEntry) (domain.Settlement, error) {
	switch {
	case !before.IsPaid && !after.IsPaid:
		return unchanged(), nil

	case !before.IsPaid && after.IsPaid:
		return c.settleForward(ctx, uow, after, nil)

	case before.IsPaid && !after.IsPaid:
		reversal, err := c.reverse(ctx, uow, before)
		if err != nil {
			return domain.Settlement{}, err
		}
		return settled(*reversal), nil

	default:
		if before.AccountID == after.AccountID && before.Amount.Equal(after.Amount) {
			return unchanged(), nil
		}
		// Still paid but moved or resized: undo the old effect, then apply the new one.
		reversal, err := c.reverse(ctx, uow, before)
		if err != nil {
			return domain.Settlement{}, err
		}
		return c.settleForward(ctx, uow, after, []domain.Transaction{*reversal})
	}
}

func (c *paidStateCoordinator) OnDelete(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error) {
	if !entry.IsPaid {
		return unchanged(), nil
	}
	reversal, err := c.reverse(ctx, uow, entry)
	if err != nil {
		return domain.Settlement{}, err
	}
	return settled(*reversal), nil
}

func (c *paidStateCoordinator) settleForward(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry, recorded []domain.Transaction) (domain.Settlement, error) {
	var txn *domain.Transaction
	err := uow.WithinSavepoint(ctx, func(sp portsrepo.UnitOfWork) error {
		var recordErr error
		txn, recordErr = c.journal.RecordForEntry(ctx, sp, entry, true)
		return recordErr
	})

	var overdraft *apperrors.OverdraftError
	if errors.As(err, &overdraft) {
		if markErr := c.markUnpaid(ctx, uow, entry); markErr != nil {
			return domain.Settlement{}, markErr
		}
		c.LogInfo(ctx, "Paid flag cleared after rejected balance change",
			slog.String("source_type", string(entry.Kind)),
			slog.String("source_id", entry.ID),
			slog.String("account_id", entry.AccountID))
		return domain.Settlement{
			Status:       domain.SettlementRejected,
			Transactions: recorded,
			Info:         rejectionInfo(entry, overdraft),
		}, nil
	}
	if err != nil {
		return domain.Settlement{}, err
	}

	return settled(append(recorded, *txn)...), nil
}

func (c *paidStateCoordinator) reverse(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (*domain.Transaction, error) {
	txn, err := c.journal.RecordForEntry(ctx, uow, entry, false)
	var overdraft *apperrors.OverdraftError
	if errors.As(err, &overdraft) {
		return nil, fmt.Errorf("%w: reversing %s %s would exceed the overdraft limit of account %s: %w",
			apperrors.ErrValidation, kindName(entry.Kind), entry.ID, entry.AccountID, err)
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (c *paidStateCoordinator) markUnpaid(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) error {
	now := domain.Now()
	var err error
	switch entry.Kind {
	case domain.SourceExpense:
		err = uow.Expenses().UpdateExpensePaid(ctx, entry.ID, false, entry.UserID, now)
	case domain.SourceIncome:
		err = uow.Incomes().UpdateIncomePaid(ctx, entry.ID, false, entry.UserID, now)
	default:
		return fmt.Errorf("%w: cannot clear paid flag of %q records", apperrors.ErrInvalidArgument, entry.Kind)
	}
	if err != nil {
		c.LogError(ctx, err, "Failed to clear paid flag", slog.String("source_id", entry.ID))
		return fmt.Errorf("failed to clear paid flag of %s %s: %w", kindName(entry.Kind), entry.ID, err)
	}
	return nil
}

func unchanged() domain.Settlement {
	return domain.Settlement{Status: domain.SettlementUnchanged}
}

func settled(txns ...domain.Transaction) domain.Settlement {
	return domain.Settlement{Status: domain.SettlementSettled, Transactions: txns}
}

func rejectionInfo(entry domain.PaidEntry, overdraft *apperrors.OverdraftError) string {
	return fmt.Sprintf("Insufficient funds: account balance %s with overdraft limit %s cannot cover %s. The %s was saved as not paid.",
		overdraft.Balance.StringFixed(2),
		overdraft.OverdraftLimit.StringFixed(2),
		overdraft.AttemptedAmount.StringFixed(2),
		kindName(entry.Kind))
}

func kindName(kind domain.SourceType) string {
	return strings.ToLower(string(kind))
}
