package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes that mean the unit lost a race and may be retried.
const (
	pgLockNotAvailable     = "55P03"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// dbtx is the subset of pgxpool.Pool and pgx.Tx used by the repositories,
// so the same repository code runs on the pool or inside a unit of work.
type dbtx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool        *pgxpool.Pool
	LockTimeout time.Duration
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return wrapDBError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// WithinTransaction runs fn inside one database transaction. Returning an error
// from fn, a panic or a failed commit rolls back every write made through the unit.
func (r *BaseRepository) WithinTransaction(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = r.Rollback(context.WithoutCancel(ctx), tx) }()

	if r.LockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.LockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return wrapDBError("failed to set lock timeout", err)
		}
	}

	if err := fn(&unitOfWork{tx: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// unitOfWork hands out repositories bound to one pgx.Tx.
type unitOfWork struct {
	tx pgx.Tx
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

func (u *unitOfWork) Accounts() portsrepo.AccountRepositoryFacade {
	return newPgxAccountRepository(u.tx)
}

func (u *unitOfWork) Transactions() portsrepo.TransactionRepositoryFacade {
	return newPgxTransactionRepository(u.tx)
}

func (u *unitOfWork) Expenses() portsrepo.ExpenseRepositoryFacade {
	return newPgxExpenseRepository(u.tx)
}

func (u *unitOfWork) Incomes() portsrepo.IncomeRepositoryFacade {
	return newPgxIncomeRepository(u.tx)
}

// WithinSavepoint uses a pgx pseudo nested transaction, which pgx implements with
// SAVEPOINT, ROLLBACK TO SAVEPOINT and RELEASE SAVEPOINT.
func (u *unitOfWork) WithinSavepoint(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	sp, err := u.tx.Begin(ctx)
	if err != nil {
		return wrapDBError("failed to create savepoint", err)
	}

	if err := fn(&unitOfWork{tx: sp}); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, apperrors.NewAppError(500, "failed to roll back savepoint", rbErr))
		}
		return err
	}

	if err := sp.Commit(ctx); err != nil {
		return wrapDBError("failed to release savepoint", err)
	}
	return nil
}

// wrapDBError normalizes a driver error. Constraint failures become
// ValidationErrors or UniquenessErrors, lock and serialization failures become a
// retryable 503 and everything else an internal AppError.
func wrapDBError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgSerializationFailure, pgDeadlockDetected:
			return apperrors.NewAppError(503, message+": concurrent update in progress, retry later", err)
		}
	}

	wrapped := apperrors.WrapConsistencyError(err)
	if errors.Is(wrapped, apperrors.ErrValidation) || errors.Is(wrapped, apperrors.ErrDuplicate) {
		return wrapped
	}
	return apperrors.NewAppError(500, message, err)
}
