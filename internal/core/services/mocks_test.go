package services_test

import (
	"context"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, balance, userID, now)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumTransactionsByAccountID(ctx context.Context, accountID string) (domain.TransactionTotals, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.TransactionTotals), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpensePaid(ctx context.Context, expenseID string, isPaid bool, userID string, now time.Time) error {
	args := m.Called(ctx, expenseID, isPaid, userID, now)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindIncomeByIDForUpdate(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) UpdateIncomePaid(ctx context.Context, incomeID string, isPaid bool, userID string, now time.Time) error {
	args := m.Called(ctx, incomeID, isPaid, userID, now)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	args := m.Called(ctx, incomeID)
	return args.Error(0)
}

// --- Unit of work mocks ---

// MockUnitOfWork hands out the same mock repositories for the unit and every savepoint.
// SavepointCalls counts WithinSavepoint invocations.
type MockUnitOfWork struct {
	AccountRepo     *MockAccountRepository
	TransactionRepo *MockTransactionRepository
	ExpenseRepo     *MockExpenseRepository
	IncomeRepo      *MockIncomeRepository
	SavepointCalls  int
}

func newMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		AccountRepo:     new(MockAccountRepository),
		TransactionRepo: new(MockTransactionRepository),
		ExpenseRepo:     new(MockExpenseRepository),
		IncomeRepo:      new(MockIncomeRepository),
	}
}

func (u *MockUnitOfWork) Accounts() portsrepo.AccountRepositoryFacade         { return u.AccountRepo }
func (u *MockUnitOfWork) Transactions() portsrepo.TransactionRepositoryFacade { return u.TransactionRepo }
func (u *MockUnitOfWork) Expenses() portsrepo.ExpenseRepositoryFacade         { return u.ExpenseRepo }
func (u *MockUnitOfWork) Incomes() portsrepo.IncomeRepositoryFacade           { return u.IncomeRepo }

func (u *MockUnitOfWork) WithinSavepoint(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	u.SavepointCalls++
	return fn(u)
}

func (u *MockUnitOfWork) AssertExpectations(t mock.TestingT) {
	u.AccountRepo.AssertExpectations(t)
	u.TransactionRepo.AssertExpectations(t)
	u.ExpenseRepo.AssertExpectations(t)
	u.IncomeRepo.AssertExpectations(t)
}

// MockTransactionManager runs fn against UoW and reports how the unit ended.
type MockTransactionManager struct {
	UoW        *MockUnitOfWork
	Committed  int
	RolledBack int
}

func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	if err := fn(m.UoW); err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}

// --- Service mocks ---

type MockAccountLedger struct {
	mock.Mock
}

func (m *MockAccountLedger) Credit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, uow, accountID, amount, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountLedger) Debit(ctx context.Context, uow portsrepo.UnitOfWork, accountID string, amount decimal.Decimal, actorID string) (*domain.Account, error) {
	args := m.Called(ctx, uow, accountID, amount, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockTransactionJournal struct {
	mock.Mock
}

func (m *MockTransactionJournal) Record(ctx context.Context, uow portsrepo.UnitOfWork, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, uow, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionJournal) RecordForExpense(ctx context.Context, uow portsrepo.UnitOfWork, expense domain.Expense, paid bool) (*domain.Transaction, error) {
	return m.RecordForEntry(ctx, uow, expense.PaidEntry(), paid)
}

func (m *MockTransactionJournal) RecordForIncome(ctx context.Context, uow portsrepo.UnitOfWork, income domain.Income, paid bool) (*domain.Transaction, error) {
	return m.RecordForEntry(ctx, uow, income.PaidEntry(), paid)
}

func (m *MockTransactionJournal) RecordForEntry(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry, paid bool) (*domain.Transaction, error) {
	args := m.Called(ctx, uow, entry, paid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type MockPaidStateCoordinator struct {
	mock.Mock
}

func (m *MockPaidStateCoordinator) OnCreate(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error) {
	args := m.Called(ctx, uow, entry)
	return args.Get(0).(domain.Settlement), args.Error(1)
}

func (m *MockPaidStateCoordinator) OnUpdate(ctx context.Context, uow portsrepo.UnitOfWork, before, after domain.PaidEntry) (domain.Settlement, error) {
	args := m.Called(ctx, uow, before, after)
	return args.Get(0).(domain.Settlement), args.Error(1)
}

func (m *MockPaidStateCoordinator) OnDelete(ctx context.Context, uow portsrepo.UnitOfWork, entry domain.PaidEntry) (domain.Settlement, error) {
	args := m.Called(ctx, uow, entry)
	return args.Get(0).(domain.Settlement), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal argument by value rather than by representation.
func decEq(s string) any {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
