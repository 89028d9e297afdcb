package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// AuthorizeOwner reports records owned by someone else as missing, so ids of
// other users' data are not disclosed.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, userID, entity, id string) error {
	if ownerID == userID {
		return nil
	}
	s.LogWarn(ctx, "Access to record owned by another user refused",
		slog.String("entity", entity),
		slog.String("id", id),
		slog.String("user_id", userID))
	return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrNotFound)
}

// EnsureAccountOwner loads accountID through accounts and checks it belongs to userID.
func (s *BaseService) EnsureAccountOwner(ctx context.Context, accounts portsrepo.AccountReader, accountID, userID string) (*domain.Account, error) {
	account, err := accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	if err := s.AuthorizeOwner(ctx, account.UserID, userID, "account", accountID); err != nil {
		return nil, err
	}
	return account, nil
}

// dateOrDefault normalizes an optional request date, falling back to def.
func dateOrDefault(d *time.Time, def time.Time) time.Time {
	if d == nil || d.IsZero() {
		return def
	}
	return d.UTC().Truncate(time.Microsecond)
}
