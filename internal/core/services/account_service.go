package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionReader
	txManager   portsrepo.TransactionManager
	journal     portssvc.TransactionJournalSvc
	validate    *validator.Validate
	maxPageSize int
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountService)

// WithMaxPageSize caps the number of transactions returned per page.
func WithMaxPageSize(n int) ServiceOption {
	return func(s *accountService) {
		if n > 0 {
			s.maxPageSize = n
		}
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	txManager portsrepo.TransactionManager,
	journal portssvc.TransactionJournalSvc,
	options ...ServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		txManager:   txManager,
		journal:     journal,
		validate:    validation.New(),
		maxPageSize: maxPageSize,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.WrapConsistencyError(err)
	}

	now := domain.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Balance:        req.OpeningBalance,
		OverdraftLimit: req.OverdraftLimit,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account name already in use", slog.String("name", req.Name))
		} else {
			s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.EnsureAccountOwner(ctx, s.accountRepo, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of the user's accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	limit = s.pageSize(limit)
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// RecordTransaction applies a manual deposit or withdrawal. Unlike expense and income writes,
// a withdrawal refused by the overdraft limit fails the whole call.
func (s *accountService) RecordTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.WrapConsistencyError(err)
	}

	txn := domain.Transaction{
		AccountID:       accountID,
		UserID:          userID,
		Amount:          req.Amount,
		TransactionType: domain.TransactionType(req.TransactionType),
		Description:     req.Description,
		TransactionDate: dateOrDefault(req.TransactionDate, domain.Now()),
		SourceType:      domain.SourceManual,
	}

	var recorded *domain.Transaction
	err := s.txManager.WithinTransaction(ctx, func(uow portsrepo.UnitOfWork) error {
		if _, err := s.EnsureAccountOwner(ctx, uow.Accounts(), accountID, userID); err != nil {
			return err
		}
		var err error
		recorded, err = s.journal.Record(ctx, uow, txn)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOverdraftExceeded), errors.Is(err, apperrors.ErrNotFound),
			errors.Is(err, apperrors.ErrInvalidTransactionType), errors.Is(err, apperrors.ErrInvalidArgument):
			s.LogWarn(ctx, "Manual transaction refused", slog.String("account_id", accountID), slog.String("reason", err.Error()))
		default:
			s.LogError(ctx, err, "Failed to record manual transaction", slog.String("account_id", accountID))
		}
		return nil, err
	}

	return recorded, nil
}

// ListTransactionsByAccount retrieves transactions for a specific account, newest first.
func (s *accountService) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.GetAccountByID(ctx, accountID, userID); err != nil {
		return nil, err
	}

	limit := s.pageSize(params.Limit)
	transactions, nextToken, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	s.LogDebug(ctx, "Transactions listed for account", slog.Int("count", len(transactions)))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

func (s *accountService) pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > s.maxPageSize {
		return s.maxPageSize
	}
	return limit
}
