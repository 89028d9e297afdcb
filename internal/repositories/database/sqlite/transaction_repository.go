package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/accounting"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/mapping"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/pagination"
)

const transactionColumns = `transaction_id, account_id, user_id, amount, transaction_type, description,
	transaction_date, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteTransactionRepository struct {
	db dbtx
}

func newSQLiteTransactionRepository(db dbtx) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

// SaveTransaction appends a transaction row.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.UserID,
		m.Amount.String(),
		string(m.TransactionType),
		m.Description,
		m.TransactionDate,
		m.SourceType,
		m.SourceID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to save transaction %s", m.TransactionID), err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ?;`
	m, err := scanTransaction(r.db.QueryRowContext(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find transaction %s", transactionID), err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactionsByAccountID returns the newest transactions of an account first,
// paged on (transaction_date, created_at).
func (r *SQLiteTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = ?`
	args := []any{accountID}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < (?, ?)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC LIMIT ?;`
	args = append(args, fetchLimit)

	page, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		page = page[:limit]
	}
	return mapping.ToDomainTransactionSlice(page), nextTokenVal, nil
}

// ListTransactionsBySource returns every transaction produced by one expense or income, oldest first.
func (r *SQLiteTransactionRepository) ListTransactionsBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE source_type = ? AND source_id = ?
		ORDER BY created_at ASC, rowid ASC;
	`
	txns, err := r.queryTransactions(ctx, query, string(sourceType), sourceID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// SumTransactionsByAccountID totals deposits and withdrawals of an account.
// Amounts are stored as text, so they are summed in Go with exact decimals.
func (r *SQLiteTransactionRepository) SumTransactionsByAccountID(ctx context.Context, accountID string) (domain.TransactionTotals, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = ?;`
	txns, err := r.queryTransactions(ctx, query, accountID)
	if err != nil {
		return domain.TransactionTotals{}, err
	}
	totals, err := accounting.SumTransactions(mapping.ToDomainTransactionSlice(txns))
	if err != nil {
		return domain.TransactionTotals{}, apperrors.NewAppError(500, "failed to sum transactions for account "+accountID, err)
	}
	return totals, nil
}

func (r *SQLiteTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("failed to query transactions", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapDBError("failed to scan transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("error iterating transaction rows", err)
	}
	return txns, nil
}

func scanTransaction(row scanner) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.UserID,
		&m.Amount,
		&m.TransactionType,
		&m.Description,
		&m.TransactionDate,
		&m.SourceType,
		&m.SourceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
