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
)

const incomeColumns = `income_id, user_id, account_id, category_id, amount, description, is_paid, date,
	payment_method, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteIncomeRepository struct {
	db dbtx
}

func newSQLiteIncomeRepository(db dbtx) portsrepo.IncomeRepositoryFacade {
	return &SQLiteIncomeRepository{db: db}
}

var _ portsrepo.IncomeRepositoryFacade = (*SQLiteIncomeRepository)(nil)

// SaveIncome inserts a new income.
func (r *SQLiteIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `INSERT INTO incomes (` + incomeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query,
		m.IncomeID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount.String(),
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to save income %s", m.IncomeID), err)
	}
	return nil
}

// FindIncomeByID retrieves an income by its ID.
func (r *SQLiteIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	return r.findOne(ctx, incomeID)
}

// FindIncomeByIDForUpdate is a plain read: the unit already holds the database writer lock.
func (r *SQLiteIncomeRepository) FindIncomeByIDForUpdate(ctx context.Context, incomeID string) (*domain.Income, error) {
	return r.findOne(ctx, incomeID)
}

func (r *SQLiteIncomeRepository) findOne(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = ?;`
	var m models.Income
	err := r.db.QueryRowContext(ctx, query, incomeID).Scan(
		&m.IncomeID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Description,
		&m.IsPaid,
		&m.Date,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find income %s", incomeID), err)
	}
	d := mapping.ToDomainIncome(m)
	return &d, nil
}

// UpdateIncome rewrites every mutable column of an income.
func (r *SQLiteIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
		UPDATE incomes
		SET account_id = ?, category_id = ?, amount = ?, description = ?, is_paid = ?, date = ?,
		    payment_method = ?, last_updated_at = ?, last_updated_by = ?
		WHERE income_id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		m.AccountID,
		m.CategoryID,
		m.Amount.String(),
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.IncomeID,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update income %s", m.IncomeID), err)
	}
	return requireAffected(res)
}

// UpdateIncomePaid changes only the paid flag of an income.
func (r *SQLiteIncomeRepository) UpdateIncomePaid(ctx context.Context, incomeID string, isPaid bool, userID string, now time.Time) error {
	query := `UPDATE incomes SET is_paid = ?, last_updated_at = ?, last_updated_by = ? WHERE income_id = ?;`
	res, err := r.db.ExecContext(ctx, query, isPaid, now, userID, incomeID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update paid flag of income %s", incomeID), err)
	}
	return requireAffected(res)
}

// DeleteIncome removes an income. Its transactions stay as history.
func (r *SQLiteIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE income_id = ?;`, incomeID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to delete income %s", incomeID), err)
	}
	return requireAffected(res)
}
