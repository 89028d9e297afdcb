package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IncomeServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	uow         *MockUnitOfWork
	txManager   *MockTransactionManager
	readRepo    *MockIncomeRepository
	coordinator *MockPaidStateCoordinator
	service     portssvc.IncomeSvcFacade
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.uow = newMockUnitOfWork()
	suite.txManager = &MockTransactionManager{UoW: suite.uow}
	suite.readRepo = new(MockIncomeRepository)
	suite.coordinator = new(MockPaidStateCoordinator)
	suite.service = services.NewIncomeService(suite.readRepo, suite.txManager, suite.coordinator)
}

func (suite *IncomeServiceTestSuite) TestCreateIncome() {
	suite.uow.AccountRepo.On("FindAccountByID", suite.ctx, "acc-1").
		Return(&domain.Account{AccountID: "acc-1", UserID: "user-1"}, nil).Once()
	suite.uow.IncomeRepo.On("SaveIncome", suite.ctx, mock.MatchedBy(func(i domain.Income) bool {
		return i.IncomeID != "" && i.IsPaid && i.Amount.Equal(dec("1200"))
	})).Return(nil).Once()
	suite.coordinator.On("OnCreate", suite.ctx, suite.uow, mock.MatchedBy(func(p domain.PaidEntry) bool {
		return p.Kind == domain.SourceIncome && p.IsPaid
	})).Return(domain.Settlement{Status: domain.SettlementSettled}, nil).Once()

	result, err := suite.service.CreateIncome(suite.ctx, dto.CreateIncomeRequest{
		AccountID:   "acc-1",
		Amount:      dec("1200"),
		Description: "Salary",
		IsPaid:      true,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.SaveSucceeded, result.Status)
	suite.Equal("Salary", result.Record.Description)
	suite.uow.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_MissingDescription() {
	_, err := suite.service.CreateIncome(suite.ctx, dto.CreateIncomeRequest{
		AccountID: "acc-1",
		Amount:    dec("10"),
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(suite.txManager.Committed + suite.txManager.RolledBack)
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_ReversalRefusedRollsBack() {
	stored := &domain.Income{IncomeID: "inc-1", UserID: "user-1", AccountID: "acc-1", Amount: dec("30"), IsPaid: true}
	suite.uow.IncomeRepo.On("FindIncomeByIDForUpdate", suite.ctx, "inc-1").Return(stored, nil).Once()
	suite.uow.IncomeRepo.On("UpdateIncome", suite.ctx, mock.Anything).Return(nil).Once()
	refused := fmt.Errorf("%w: reversing income inc-1: %w", apperrors.ErrValidation,
		apperrors.NewOverdraftError("acc-1", dec("10"), dec("0"), dec("30")))
	suite.coordinator.On("OnUpdate", suite.ctx, suite.uow, stored.PaidEntry(), mock.Anything).
		Return(domain.Settlement{}, refused).Once()

	unpaid := false
	_, err := suite.service.UpdateIncome(suite.ctx, "inc-1", dto.UpdateIncomeRequest{IsPaid: &unpaid}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(1, suite.txManager.RolledBack)
	suite.Zero(suite.txManager.Committed)
}

func (suite *IncomeServiceTestSuite) TestDeleteIncome_ForeignOwner() {
	stored := &domain.Income{IncomeID: "inc-1", UserID: "owner", AccountID: "acc-1", Amount: dec("30")}
	suite.uow.IncomeRepo.On("FindIncomeByIDForUpdate", suite.ctx, "inc-1").Return(stored, nil).Once()

	err := suite.service.DeleteIncome(suite.ctx, "inc-1", "intruder")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.coordinator.AssertNotCalled(suite.T(), "OnDelete", mock.Anything, mock.Anything, mock.Anything)
	suite.uow.IncomeRepo.AssertNotCalled(suite.T(), "DeleteIncome", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestGetIncomeByID() {
	suite.readRepo.On("FindIncomeByID", suite.ctx, "inc-1").
		Return(&domain.Income{IncomeID: "inc-1", UserID: "user-1"}, nil).Once()

	income, err := suite.service.GetIncomeByID(suite.ctx, "inc-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal("inc-1", income.IncomeID)
}
