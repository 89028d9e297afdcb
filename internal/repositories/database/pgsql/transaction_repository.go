package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/mapping"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, account_id, user_id, amount, transaction_type, description,
	transaction_date, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	db dbtx
}

func newPgxTransactionRepository(db dbtx) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.UserID,
		m.Amount,
		m.TransactionType,
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
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find transaction %s", transactionID), err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactionsByAccountID returns the newest transactions of an account first.
// Pages are keyed on (transaction_date, created_at) so concurrent inserts do not shift them.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapDBError("failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	page := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, wrapDBError("failed to scan transaction row for account "+accountID, err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, wrapDBError("error iterating transaction rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		// The token points at the last row of this page; the next query starts after it.
		last := page[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		page = page[:limit]
	}
	return mapping.ToDomainTransactionSlice(page), nextTokenVal, nil
}

// ListTransactionsBySource returns every transaction produced by one expense or income, oldest first.
func (r *PgxTransactionRepository) ListTransactionsBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE source_type = $1 AND source_id = $2
		ORDER BY created_at ASC, transaction_id ASC;
	`
	rows, err := r.db.Query(ctx, query, string(sourceType), sourceID)
	if err != nil {
		return nil, wrapDBError(fmt.Sprintf("failed to query transactions of %s %s", sourceType, sourceID), err)
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
	return mapping.ToDomainTransactionSlice(txns), nil
}

// SumTransactionsByAccountID totals deposits and withdrawals of an account in the database.
func (r *PgxTransactionRepository) SumTransactionsByAccountID(ctx context.Context, accountID string) (domain.TransactionTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEPOSIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'WITHDRAWAL'), 0),
			COUNT(*)
		FROM transactions
		WHERE account_id = $1;
	`
	var deposits, withdrawals decimal.Decimal
	var count int
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&deposits, &withdrawals, &count); err != nil {
		return domain.TransactionTotals{}, wrapDBError("failed to sum transactions for account "+accountID, err)
	}
	return domain.TransactionTotals{Deposits: deposits, Withdrawals: withdrawals, Count: count}, nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
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
