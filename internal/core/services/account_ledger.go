package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// accountLedger implements portssvc.AccountLedgerSvc.
// It reads the balance under the row lock of the caller's unit and writes it back in the same unit.
type accountLedger struct {
	BaseService
}

// NewAccountLedger creates the ledger.
func NewAccountLedger() portssvc.AccountLedgerSvc {
	return &accountLedger{}
}

var _ portssvc.AccountLedgerSvc = (*accountLedger)(nil)

func (l *accountLedger) Credit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error) {
	if err := validateMovement(accountID, amount); err != nil {
		return nil, err
	}

	account, err := uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	account.Balance = account.Balance.Add(amount)
	return l.storeBalance(ctx, uow, account, actorID)
}

func (l *accountLedger) Debit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error) {
	if err := validateMovement(accountID, amount); err != nil {
		return nil, err
	}

	account, err := uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	if !account.CanDebit(amount) {
		l.LogInfo(ctx, "Debit rejected by overdraft limit",
			slog.String("account_id", accountID),
			slog.String("balance", account.Balance.String()),
			slog.String("overdraft_limit", account.OverdraftLimit.String()),
			slog.String("amount", amount.String()))
		return nil, apperrors.NewOverdraftError(accountID, account.Balance, account.OverdraftLimit, amount)
	}

	account.Balance = account.Balance.Sub(amount)
	return l.storeBalance(ctx, uow, account, actorID)
}

func (l *accountLedger) storeBalance(ctx context.Context, uow portsrepo.UnitOfWork, account *domain.Account, actorID string) (*domain.Account, error) {
	now := domain.Now()
	if err := uow.Accounts().UpdateAccountBalance(ctx, account.AccountID, account.Balance, actorID, now); err != nil {
		l.LogError(ctx, err, "Failed to update account balance", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to update balance of account %s: %w", account.AccountID, err)
	}
	account.LastUpdatedAt = now
	account.LastUpdatedBy = actorID

	l.LogDebug(ctx, "Account balance updated",
		slog.String("account_id", account.AccountID),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

func validateMovement(accountID string, amount decimal.Decimal) error {
	if accountID == "" {
		return fmt.Errorf("%w: account id is required", apperrors.ErrInvalidArgument)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidArgument, amount.String())
	}
	return nil
}
