package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionJournalTestSuite struct {
	suite.Suite
	ctx     context.Context
	uow     *MockUnitOfWork
	ledger  *MockAccountLedger
	journal portssvc.TransactionJournalSvc
}

func TestTransactionJournalTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionJournalTestSuite))
}

func (suite *TransactionJournalTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.uow = newMockUnitOfWork()
	suite.ledger = new(MockAccountLedger)
	suite.journal = services.NewTransactionJournal(suite.ledger)
}

func (suite *TransactionJournalTestSuite) TestRecord_DepositCreditsAccount() {
	txn := domain.Transaction{
		AccountID:       "acc-1",
		UserID:          "user-1",
		Amount:          dec("25"),
		TransactionType: domain.Deposit,
		Description:     "Cash",
	}
	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID != "" && t.SourceType == domain.SourceManual && !t.TransactionDate.IsZero() &&
			t.CreatedBy == "user-1" && t.SourceID == nil
	})).Return(nil).Once()
	suite.ledger.On("Credit", suite.ctx, suite.uow, "acc-1", decEq("25"), "user-1").Return(&domain.Account{}, nil).Once()

	recorded, err := suite.journal.Record(suite.ctx, suite.uow, txn)

	suite.Require().NoError(err)
	suite.NotEmpty(recorded.TransactionID)
	suite.Equal(domain.SourceManual, recorded.SourceType)
	suite.WithinDuration(time.Now(), recorded.CreatedAt, 5*time.Second)
	suite.ledger.AssertExpectations(suite.T())
	suite.uow.AssertExpectations(suite.T())
	suite.ledger.AssertNotCalled(suite.T(), "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionJournalTestSuite) TestRecord_WithdrawalDebitsAccount() {
	txn := domain.Transaction{AccountID: "acc-1", UserID: "user-1", Amount: dec("10"), TransactionType: domain.Withdrawal}
	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.ledger.On("Debit", suite.ctx, suite.uow, "acc-1", decEq("10"), "user-1").Return(&domain.Account{}, nil).Once()

	_, err := suite.journal.Record(suite.ctx, suite.uow, txn)

	suite.Require().NoError(err)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *TransactionJournalTestSuite) TestRecord_OverdraftIsPropagated() {
	txn := domain.Transaction{AccountID: "acc-1", UserID: "user-1", Amount: dec("10"), TransactionType: domain.Withdrawal}
	overdraft := apperrors.NewOverdraftError("acc-1", dec("5"), dec("0"), dec("10"))
	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.ledger.On("Debit", suite.ctx, suite.uow, "acc-1", mock.Anything, "user-1").Return(nil, overdraft).Once()

	recorded, err := suite.journal.Record(suite.ctx, suite.uow, txn)

	suite.Nil(recorded)
	suite.ErrorIs(err, apperrors.ErrOverdraftExceeded)
}

func (suite *TransactionJournalTestSuite) TestRecord_InvalidInputNeverPersists() {
	tests := []struct {
		name    string
		txn     domain.Transaction
		wantErr error
	}{
		{
			name:    "unknown type",
			txn:     domain.Transaction{AccountID: "acc-1", UserID: "user-1", Amount: dec("1"), TransactionType: "TRANSFER"},
			wantErr: apperrors.ErrInvalidTransactionType,
		},
		{
			name:    "missing account",
			txn:     domain.Transaction{UserID: "user-1", Amount: dec("1"), TransactionType: domain.Deposit},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "missing user",
			txn:     domain.Transaction{AccountID: "acc-1", Amount: dec("1"), TransactionType: domain.Deposit},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "zero amount",
			txn:     domain.Transaction{AccountID: "acc-1", UserID: "user-1", Amount: dec("0"), TransactionType: domain.Withdrawal},
			wantErr: apperrors.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.journal.Record(suite.ctx, suite.uow, tt.txn)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.uow.TransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionJournalTestSuite) TestRecordForExpense_ForwardAndReversal() {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expense := domain.Expense{
		ExpenseID:   "exp-1",
		UserID:      "user-1",
		AccountID:   "acc-1",
		Amount:      dec("40"),
		Description: "Rent",
		IsPaid:      true,
		Date:        date,
	}

	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionType == domain.Withdrawal && t.SourceType == domain.SourceExpense &&
			t.SourceID != nil && *t.SourceID == "exp-1" && t.TransactionDate.Equal(date) && t.Description == "Expense: Rent"
	})).Return(nil).Once()
	suite.ledger.On("Debit", suite.ctx, suite.uow, "acc-1", decEq("40"), "user-1").Return(&domain.Account{}, nil).Once()

	forward, err := suite.journal.RecordForExpense(suite.ctx, suite.uow, expense, true)
	suite.Require().NoError(err)
	suite.Equal(domain.Withdrawal, forward.TransactionType)

	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionType == domain.Deposit && t.Description == "Reversal: Expense: Rent" && !t.TransactionDate.Equal(date)
	})).Return(nil).Once()
	suite.ledger.On("Credit", suite.ctx, suite.uow, "acc-1", decEq("40"), "user-1").Return(&domain.Account{}, nil).Once()

	reversal, err := suite.journal.RecordForExpense(suite.ctx, suite.uow, expense, false)
	suite.Require().NoError(err)
	suite.Equal(domain.Deposit, reversal.TransactionType)
	suite.True(forward.SignedAmount().Add(reversal.SignedAmount()).IsZero())

	suite.ledger.AssertExpectations(suite.T())
	suite.uow.AssertExpectations(suite.T())
}

func (suite *TransactionJournalTestSuite) TestRecordForIncome_Deposits() {
	income := domain.Income{IncomeID: "inc-1", UserID: "user-1", AccountID: "acc-1", Amount: dec("30"), IsPaid: true}
	suite.uow.TransactionRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionType == domain.Deposit && t.SourceType == domain.SourceIncome
	})).Return(nil).Once()
	suite.ledger.On("Credit", suite.ctx, suite.uow, "acc-1", decEq("30"), "user-1").Return(&domain.Account{}, nil).Once()

	txn, err := suite.journal.RecordForIncome(suite.ctx, suite.uow, income, true)

	suite.Require().NoError(err)
	suite.Equal(domain.Deposit, txn.TransactionType)
}

func (suite *TransactionJournalTestSuite) TestRecordForEntry_RequiresID() {
	_, err := suite.journal.RecordForEntry(suite.ctx, suite.uow, domain.PaidEntry{Kind: domain.SourceExpense, AccountID: "acc-1"}, true)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}
