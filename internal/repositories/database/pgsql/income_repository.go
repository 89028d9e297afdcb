package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/domain"
	portsrepo "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/repositories"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/models"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const incomeColumns = `income_id, user_id, account_id, category_id, amount, description, is_paid, date,
	payment_method, created_at, created_by, last_updated_at, last_updated_by`

type PgxIncomeRepository struct {
	db dbtx
}

func newPgxIncomeRepository(db dbtx) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{db: db}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

// SaveIncome inserts a new income.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)

	query := `
		INSERT INTO incomes (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.IncomeID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
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
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = $1;`
	return r.findOne(ctx, query, incomeID)
}

// FindIncomeByIDForUpdate retrieves an income and locks its row until the surrounding transaction ends.
func (r *PgxIncomeRepository) FindIncomeByIDForUpdate(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = $1 FOR UPDATE;`
	return r.findOne(ctx, query, incomeID)
}

func (r *PgxIncomeRepository) findOne(ctx context.Context, query, incomeID string) (*domain.Income, error) {
	var m models.Income
	err := r.db.QueryRow(ctx, query, incomeID).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find income %s", incomeID), err)
	}
	d := mapping.ToDomainIncome(m)
	return &d, nil
}

// UpdateIncome rewrites every mutable column of an income.
func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)

	query := `
		UPDATE incomes
		SET account_id = $2, category_id = $3, amount = $4, description = $5, is_paid = $6, date = $7,
		    payment_method = $8, last_updated_at = $9, last_updated_by = $10
		WHERE income_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.IncomeID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update income %s", m.IncomeID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateIncomePaid changes only the paid flag of an income.
func (r *PgxIncomeRepository) UpdateIncomePaid(ctx context.Context, incomeID string, isPaid bool, userID string, now time.Time) error {
	query := `UPDATE incomes SET is_paid = $2, last_updated_at = $3, last_updated_by = $4 WHERE income_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, incomeID, isPaid, now, userID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update paid flag of income %s", incomeID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteIncome removes an income. Its transactions stay as history.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1;`, incomeID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to delete income %s", incomeID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
