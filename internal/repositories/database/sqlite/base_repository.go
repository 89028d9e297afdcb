package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dbtx is the subset of *sql.DB and *sql.Tx used by the repositories.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BaseRepository provides transaction handling over a SQLite database.
// The database must be opened with _txlock=immediate so every unit takes the
// writer lock at BEGIN and balance read-check-writes serialize.
type BaseRepository struct {
	DB *sql.DB
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// WithinTransaction runs fn inside one database transaction. Returning an error
// from fn, a panic or a failed commit rolls back every write made through the unit.
func (r *BaseRepository) WithinTransaction(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapDBError("failed to begin transaction", err)
	}
	// Rollback after a successful commit returns sql.ErrTxDone and is ignored.
	defer func() { _ = tx.Rollback() }()

	if err := fn(&unitOfWork{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return wrapDBError("failed to commit transaction", err)
	}
	return nil
}

// unitOfWork hands out repositories bound to one *sql.Tx. depth numbers the
// savepoints opened below it.
type unitOfWork struct {
	tx    *sql.Tx
	depth int
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

func (u *unitOfWork) Accounts() portsrepo.AccountRepositoryFacade {
	return newSQLiteAccountRepository(u.tx)
}

func (u *unitOfWork) Transactions() portsrepo.TransactionRepositoryFacade {
	return newSQLiteTransactionRepository(u.tx)
}

func (u *unitOfWork) Expenses() portsrepo.ExpenseRepositoryFacade {
	return newSQLiteExpenseRepository(u.tx)
}

func (u *unitOfWork) Incomes() portsrepo.IncomeRepositoryFacade {
	return newSQLiteIncomeRepository(u.tx)
}

func (u *unitOfWork) WithinSavepoint(ctx context.Context, fn func(uow portsrepo.UnitOfWork) error) error {
	name := fmt.Sprintf("sp_%d", u.depth+1)
	if _, err := u.tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return wrapDBError("failed to create savepoint", err)
	}

	if err := fn(&unitOfWork{tx: u.tx, depth: u.depth + 1}); err != nil {
		// ROLLBACK TO keeps the savepoint open, so it still has to be released.
		if _, rbErr := u.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return errors.Join(err, apperrors.NewAppError(500, "failed to roll back savepoint", rbErr))
		}
		if _, relErr := u.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); relErr != nil {
			return errors.Join(err, apperrors.NewAppError(500, "failed to release savepoint", relErr))
		}
		return err
	}

	if _, err := u.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return wrapDBError("failed to release savepoint", err)
	}
	return nil
}

// wrapDBError normalizes a driver error. Constraint failures become
// ValidationErrors or UniquenessErrors, a busy database becomes a retryable 503
// and everything else an internal AppError.
func wrapDBError(message string, err error) error {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return apperrors.NewAppError(503, message+": database is busy, retry later", err)
		}
	}

	wrapped := apperrors.WrapConsistencyError(err)
	if errors.Is(wrapped, apperrors.ErrValidation) || errors.Is(wrapped, apperrors.ErrDuplicate) {
		return wrapped
	}
	return apperrors.NewAppError(500, message, err)
}
