package services

import (
	"context"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountLedgerSvc is the only code path allowed to change an account balance.
// Every call runs inside the caller's unit of work.
type AccountLedgerSvc interface {
	// Credit adds amount to the account balance.
	Credit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error)

	// Debit subtracts amount from the account balance, failing with *apperrors.OverdraftError
	// when the result would fall below -overdraftLimit.
	Debit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error)
}

// TransactionJournalSvc persists transactions and applies their balance effect in the same unit.
type TransactionJournalSvc interface {
	// Record validates and stores txn, then credits or debits its account.
	Record(ctx context.Context, uow portsrepo.UnitOfWork, txn domain.Transaction) (*domain.Transaction, error)

	// RecordForExpense records the withdrawal (paid=true) or its reversal (paid=false) for an expense.
	RecordForExpense(ctx context.Context, uow portsrepo.UnitOfWork, expense domain.Expense, paid bool) (*domain.Transaction, error)

	// RecordForIncome records the deposit (paid=true) or its reversal (paid=false) for an income.
	RecordForIncome(ctx context.Context, uow portsrepo.UnitOfWork, income domain.Income, paid bool) (*domain.Transaction, error)

	// RecordForEntry is the kind-agnostic form of RecordForExpense and RecordForIncome.
	RecordForEntry(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry, paid bool) (*domain.Transaction, error)
}

// PaidStateCoordinatorSvc keeps the paid flag of expenses and incomes in step with the ledger.
// A rejected forward effect is reported as a Rejected settlement, not as an error.
type PaidStateCoordinatorSvc interface {
	// OnCreate settles a freshly stored record.
	OnCreate(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error)

	// OnUpdate settles the difference between the stored and the updated record.
	OnUpdate(ctx context.Context, uow portsrepo.UnitOfWork, before, after domain.PaidEntry) (domain.Settlement, error)

	// OnDelete reverses a paid record before it is removed.
	OnDelete(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error)
}
