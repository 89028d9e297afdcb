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

const expenseColumns = `expense_id, user_id, account_id, category_id, amount, description, is_paid, date,
	payment_method, receipt_url, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteExpenseRepository struct {
	db dbtx
}

func newSQLiteExpenseRepository(db dbtx) portsrepo.ExpenseRepositoryFacade {
	return &SQLiteExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

// SaveExpense inserts a new expense.
func (r *SQLiteExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `INSERT INTO expenses (` + expenseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount.String(),
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
func (r *SQLiteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return r.findOne(ctx, expenseID)
}

// FindExpenseByIDForUpdate is a plain read: the unit already holds the database writer lock.
func (r *SQLiteExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return r.findOne(ctx, expenseID)
}

func (r *SQLiteExpenseRepository) findOne(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = ?;`
	var m models.Expense
	err := r.db.QueryRowContext(ctx, query, expenseID).Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find expense %s", expenseID), err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// UpdateExpense rewrites every mutable column of an expense.
func (r *SQLiteExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET account_id = ?, category_id = ?, amount = ?, description = ?, is_paid = ?, date = ?,
		    payment_method = ?, receipt_url = ?, last_updated_at = ?, last_updated_by = ?
		WHERE expense_id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		m.AccountID,
		m.CategoryID,
		m.Amount.String(),
		m.Description,
		m.IsPaid,
		m.Date,
		m.PaymentMethod,
		m.ReceiptURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update expense %s", m.ExpenseID), err)
	}
	return requireAffected(res)
}

// UpdateExpensePaid changes only the paid flag of an expense.
func (r *SQLiteExpenseRepository) UpdateExpensePaid(ctx context.Context, expenseID string, isPaid bool, userID string, now time.Time) error {
	query := `UPDATE expenses SET is_paid = ?, last_updated_at = ?, last_updated_by = ? WHERE expense_id = ?;`
	res, err := r.db.ExecContext(ctx, query, isPaid, now, userID, expenseID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to update paid flag of expense %s", expenseID), err)
	}
	return requireAffected(res)
}

// DeleteExpense removes an expense. Its transactions stay as history.
func (r *SQLiteExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE expense_id = ?;`, expenseID)
	if err != nil {
		return wrapDBError(fmt.Sprintf("failed to delete expense %s", expenseID), err)
	}
	return requireAffected(res)
}
