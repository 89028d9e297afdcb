package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite
	ctx   context.Context
	db    *sql.DB
	repos portsrepo.RepositoryProvider
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	path := filepath.Join(s.T().TempDir(), "ledger.db")
	s.Require().NoError(database.RunMigrations(database.DriverSQLite, path))

	db, err := database.OpenSQLite(s.ctx, path)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.db = db
	s.repos = NewRepositoryProvider(db)
}

func (s *RepositorySuite) newAccount(userID, name, balance string) domain.Account {
	now := domain.Now()
	acc := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           name,
		Balance:        decimal.RequireFromString(balance),
		OverdraftLimit: decimal.Zero,
		OpeningBalance: decimal.RequireFromString(balance),
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	s.Require().NoError(s.repos.AccountRepo.SaveAccount(s.ctx, acc))
	return acc
}

func (s *RepositorySuite) newTransaction(acc domain.Account, txnType domain.TransactionType, amount string, date time.Time) domain.Transaction {
	now := domain.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       acc.AccountID,
		UserID:          acc.UserID,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: txnType,
		TransactionDate: date,
		SourceType:      domain.SourceManual,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: acc.UserID, LastUpdatedAt: now, LastUpdatedBy: acc.UserID},
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))
	return txn
}

func (s *RepositorySuite) TestAccountRoundTrip() {
	acc := s.newAccount("user-1", "Wallet", "1234.5678")

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Equal(acc.Name, found.Name)
	s.Equal(acc.UserID, found.UserID)
	s.True(acc.Balance.Equal(found.Balance), "balance %s", found.Balance)
	s.True(acc.CreatedAt.Equal(found.CreatedAt))

	_, err = s.repos.AccountRepo.FindAccountByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestSaveAccountDuplicateName() {
	s.newAccount("user-1", "Wallet", "0")

	now := domain.Now()
	dup := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      "user-1",
		Name:        "Wallet",
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
	}
	err := s.repos.AccountRepo.SaveAccount(s.ctx, dup)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	var uniq *apperrors.UniquenessErrors
	s.Require().True(errors.As(err, &uniq))
	fields := make([]string, 0, len(uniq.Errors))
	for _, fe := range uniq.Errors {
		fields = append(fields, fe.Field)
	}
	s.ElementsMatch([]string{"user_id", "name"}, fields)

	// Same name for another user is fine.
	s.newAccount("user-2", "Wallet", "0")
}

func (s *RepositorySuite) TestListAccountsByUser() {
	a := s.newAccount("user-1", "A", "0")
	b := s.newAccount("user-1", "B", "0")
	s.newAccount("user-2", "C", "0")

	accounts, err := s.repos.AccountRepo.ListAccountsByUser(s.ctx, "user-1", 10, 0)
	s.Require().NoError(err)
	s.Len(accounts, 2)

	ids := []string{accounts[0].AccountID, accounts[1].AccountID}
	s.ElementsMatch([]string{a.AccountID, b.AccountID}, ids)

	page, err := s.repos.AccountRepo.ListAccountsByUser(s.ctx, "user-1", 1, 1)
	s.Require().NoError(err)
	s.Len(page, 1)
}

func (s *RepositorySuite) TestUpdateAccountBalance() {
	acc := s.newAccount("user-1", "Wallet", "10")

	err := s.repos.TxManager.WithinTransaction(s.ctx, func(uow portsrepo.UnitOfWork) error {
		locked, err := uow.Accounts().FindAccountByIDForUpdate(s.ctx, acc.AccountID)
		if err != nil {
			return err
		}
		return uow.Accounts().UpdateAccountBalance(s.ctx, locked.AccountID, locked.Balance.Sub(decimal.RequireFromString("2.5")), "user-1", domain.Now())
	})
	s.Require().NoError(err)

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("7.5").Equal(found.Balance))

	err = s.repos.AccountRepo.UpdateAccountBalance(s.ctx, "missing", decimal.Zero, "user-1", domain.Now())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestWithinTransactionRollsBackOnError() {
	acc := s.newAccount("user-1", "Wallet", "10")
	boom := errors.New("boom")

	err := s.repos.TxManager.WithinTransaction(s.ctx, func(uow portsrepo.UnitOfWork) error {
		if err := uow.Accounts().UpdateAccountBalance(s.ctx, acc.AccountID, decimal.NewFromInt(99), "user-1", domain.Now()); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(10).Equal(found.Balance))
}

func (s *RepositorySuite) TestWithinSavepointRollsBackOnlyInnerWrites() {
	acc := s.newAccount("user-1", "Wallet", "10")
	inner := errors.New("inner failure")

	err := s.repos.TxManager.WithinTransaction(s.ctx, func(uow portsrepo.UnitOfWork) error {
		if err := uow.Accounts().UpdateAccountBalance(s.ctx, acc.AccountID, decimal.NewFromInt(20), "user-1", domain.Now()); err != nil {
			return err
		}
		spErr := uow.WithinSavepoint(s.ctx, func(sp portsrepo.UnitOfWork) error {
			if err := sp.Accounts().UpdateAccountBalance(s.ctx, acc.AccountID, decimal.NewFromInt(30), "user-1", domain.Now()); err != nil {
				return err
			}
			return inner
		})
		s.ErrorIs(spErr, inner)

		// A second savepoint on the same unit still works.
		return uow.WithinSavepoint(s.ctx, func(sp portsrepo.UnitOfWork) error {
			got, err := sp.Accounts().FindAccountByID(s.ctx, acc.AccountID)
			if err != nil {
				return err
			}
			s.True(decimal.NewFromInt(20).Equal(got.Balance))
			return nil
		})
	})
	s.Require().NoError(err)

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(found.Balance))
}

func (s *RepositorySuite) TestTransactionPagination() {
	acc := s.newAccount("user-1", "Wallet", "0")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.newTransaction(acc, domain.Deposit, "1", base.Add(time.Duration(i)*time.Hour))
	}

	first, token, err := s.repos.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Require().NotNil(token)
	s.True(base.Add(4 * time.Hour).Equal(first[0].TransactionDate))
	s.True(base.Add(3 * time.Hour).Equal(first[1].TransactionDate))

	second, token, err := s.repos.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, token)
	s.Require().NoError(err)
	s.Require().Len(second, 2)
	s.True(base.Add(2 * time.Hour).Equal(second[0].TransactionDate))

	third, token, err := s.repos.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, token)
	s.Require().NoError(err)
	s.Len(third, 1)
	s.Nil(token)

	bad := "not-a-token"
	_, _, err = s.repos.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, &bad)
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(400, appErr.Code)
}

func (s *RepositorySuite) TestTransactionsBySourceAndSum() {
	acc := s.newAccount("user-1", "Wallet", "0")
	sourceID := uuid.NewString()
	now := domain.Now()

	for _, tt := range []domain.TransactionType{domain.Withdrawal, domain.Deposit} {
		txn := domain.Transaction{
			TransactionID:   uuid.NewString(),
			AccountID:       acc.AccountID,
			UserID:          acc.UserID,
			Amount:          decimal.RequireFromString("12.34"),
			TransactionType: tt,
			TransactionDate: now,
			SourceType:      domain.SourceExpense,
			SourceID:        &sourceID,
			AuditFields:     domain.AuditFields{CreatedAt: domain.Now(), CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
		}
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))
	}
	manual := s.newTransaction(acc, domain.Deposit, "100", now)

	bySource, err := s.repos.TransactionRepo.ListTransactionsBySource(s.ctx, domain.SourceExpense, sourceID)
	s.Require().NoError(err)
	s.Require().Len(bySource, 2)
	s.Equal(domain.Withdrawal, bySource[0].TransactionType)
	s.Equal(domain.Deposit, bySource[1].TransactionType)
	s.Require().NotNil(bySource[0].SourceID)
	s.Equal(sourceID, *bySource[0].SourceID)

	found, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, manual.TransactionID)
	s.Require().NoError(err)
	s.Nil(found.SourceID)
	s.Equal(domain.SourceManual, found.SourceType)

	totals, err := s.repos.TransactionRepo.SumTransactionsByAccountID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("112.34").Equal(totals.Deposits), "deposits %s", totals.Deposits)
	s.True(decimal.RequireFromString("12.34").Equal(totals.Withdrawals))
	s.Equal(3, totals.Count)
}

func (s *RepositorySuite) TestTransactionCheckConstraint() {
	acc := s.newAccount("user-1", "Wallet", "0")
	now := domain.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       acc.AccountID,
		UserID:          acc.UserID,
		Amount:          decimal.NewFromInt(1),
		TransactionType: domain.TransactionType("TRANSFER"),
		TransactionDate: now,
		SourceType:      domain.SourceManual,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	err := s.repos.TransactionRepo.SaveTransaction(s.ctx, txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RepositorySuite) TestExpenseLifecycle() {
	acc := s.newAccount("user-1", "Wallet", "0")
	now := domain.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      "user-1",
		AccountID:   acc.AccountID,
		Amount:      decimal.RequireFromString("42.10"),
		Description: "Groceries",
		IsPaid:      true,
		Date:        now,
		ReceiptURL:  "https://example.com/r/1",
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
	}
	s.Require().NoError(s.repos.ExpenseRepo.SaveExpense(s.ctx, expense))

	found, err := s.repos.ExpenseRepo.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.True(found.IsPaid)
	s.Equal("", found.CategoryID)
	s.Equal("https://example.com/r/1", found.ReceiptURL)
	s.True(expense.Amount.Equal(found.Amount))

	s.Require().NoError(s.repos.ExpenseRepo.UpdateExpensePaid(s.ctx, expense.ExpenseID, false, "user-1", domain.Now()))
	found, err = s.repos.ExpenseRepo.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.False(found.IsPaid)

	found.Description = "Market"
	found.CategoryID = "food"
	s.Require().NoError(s.repos.ExpenseRepo.UpdateExpense(s.ctx, *found))
	updated, err := s.repos.ExpenseRepo.FindExpenseByIDForUpdate(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.Equal("Market", updated.Description)
	s.Equal("food", updated.CategoryID)

	s.Require().NoError(s.repos.ExpenseRepo.DeleteExpense(s.ctx, expense.ExpenseID))
	_, err = s.repos.ExpenseRepo.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repos.ExpenseRepo.DeleteExpense(s.ctx, expense.ExpenseID), apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestIncomeLifecycle() {
	acc := s.newAccount("user-1", "Wallet", "0")
	now := domain.Now()
	income := domain.Income{
		IncomeID:      uuid.NewString(),
		UserID:        "user-1",
		AccountID:     acc.AccountID,
		Amount:        decimal.RequireFromString("3000"),
		Description:   "Salary",
		Date:          now,
		PaymentMethod: "TRANSFER",
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
	}
	s.Require().NoError(s.repos.IncomeRepo.SaveIncome(s.ctx, income))
	s.Require().NoError(s.repos.IncomeRepo.UpdateIncomePaid(s.ctx, income.IncomeID, true, "user-1", domain.Now()))

	found, err := s.repos.IncomeRepo.FindIncomeByID(s.ctx, income.IncomeID)
	s.Require().NoError(err)
	s.True(found.IsPaid)
	s.Equal("TRANSFER", found.PaymentMethod)

	s.ErrorIs(s.repos.IncomeRepo.UpdateIncomePaid(s.ctx, "missing", true, "user-1", domain.Now()), apperrors.ErrNotFound)
	s.Require().NoError(s.repos.IncomeRepo.DeleteIncome(s.ctx, income.IncomeID))
}

func TestSQLiteDSN(t *testing.T) {
	dsn := database.SQLiteDSN("/tmp/x.db")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_time_format=sqlite")
	require.Contains(t, dsn, "foreign_keys")
}
