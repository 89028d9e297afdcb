package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, user_id, name, description, balance, overdraft_limit, opening_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type SQLiteAccountRepository struct {
	db dbtx
}

func newSQLiteAccountRepository(db dbtx) portsrepo.AccountRepositoryFacade {
	return &SQLiteAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Description,
		m.Balance.String(),
		m.OverdraftLimit.String(),
		m.OpeningBalance.String(),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to save account %s", m.AccountID), err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, accountID)
}

// FindAccountByIDForUpdate is a plain read: the unit already holds the database writer lock.
func (r *SQLiteAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, accountID)
}

func (r *SQLiteAccountRepository) findOne(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ?;`
	m, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find account %s", accountID), err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// ListAccountsByUser retrieves the accounts owned by a user, oldest first.
func (r *SQLiteAccountRepository) ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = ?
		ORDER BY created_at ASC, account_id ASC
		LIMIT ? OFFSET ?;
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapDBError("failed to list accounts for user "+userID, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, wrapDBError("failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("error iterating account rows", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccountBalance stores the new balance of an account.
func (r *SQLiteAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `UPDATE accounts SET balance = ?, last_updated_at = ?, last_updated_by = ? WHERE account_id = ?;`
	res, err := r.db.ExecContext(ctx, query, balance.String(), now, userID, accountID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update balance of account %s", accountID), err)
	}
	return requireAffected(res)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.Description,
		&m.Balance,
		&m.OverdraftLimit,
		&m.OpeningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to read affected rows", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
