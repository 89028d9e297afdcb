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

const expenseColumns = `expense_id, user_id, account_id, category_id, amount, description, is_paid, date,
	payment_method, receipt_url, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	db dbtx
}

func newPgxExpenseRepository(db dbtx) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.ReceiptURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to save expense %s", m.ExpenseID), err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	return r.findOne(ctx, query, expenseID)
}

// FindExpenseByIDForUpdate retrieves an expense and locks its row until the surrounding transaction ends.
func (r *PgxExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 FOR UPDATE;`
	return r.findOne(ctx, query, expenseID)
}

func (r *PgxExpenseRepository) findOne(ctx context.Context, query, expenseID string) (*domain.Expense, error) {
	var m models.Expense
	err := r.db.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Description,
		&m.IsPaid,
		&m.Date,
		&m.PaymentMethod,
		&m.ReceiptURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find expense %s", expenseID), err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// UpdateExpense rewrites every mutable column of an expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET account_id = $2, category_id = $3, amount = $4, description = $5, is_paid = $6, date = $7,
		    payment_method = $8, receipt_url = $9, last_updated_at = $10, last_updated_by = $11
		WHERE expense_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.ReceiptURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update expense %s", m.ExpenseID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateExpensePaid changes only the paid flag of an expense.
func (r *PgxExpenseRepository) UpdateExpensePaid(ctx context.Context, expenseID string, isPaid bool, userID string, now time.Time) error {
	query := `UPDATE expenses SET is_paid = $2, last_updated_at = $3, last_updated_by = $4 WHERE expense_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, expenseID, isPaid, now, userID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update paid flag of expense %s", expenseID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense. Its transactions stay as history.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to delete expense %s", expenseID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
