package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidArgument indicates a malformed amount or a missing identifier reached the ledger.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidTransactionType indicates a transaction type other than DEPOSIT or WITHDRAWAL.
var ErrInvalidTransactionType = errors.New("invalid transaction type")

// ErrOverdraftExceeded indicates a debit would push an account below its overdraft limit.
var ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

// ErrInternal is returned for infrastructure failures that must not leak driver details.
var ErrInternal = errors.New("internal error")

// OverdraftError carries the details of a rejected debit.
type OverdraftError struct {
	AccountID       string
	Balance         decimal.Decimal
	OverdraftLimit  decimal.Decimal
	AttemptedAmount decimal.Decimal
}

// NewOverdraftError creates an OverdraftError for the given account state and attempted debit.
func NewOverdraftError(accountID string, balance, overdraftLimit, attempted decimal.Decimal) *OverdraftError {
	return &OverdraftError{
		AccountID:       accountID,
		Balance:         balance,
		OverdraftLimit:  overdraftLimit,
		AttemptedAmount: attempted,
	}
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("%s: account %s cannot be debited by %s (balance %s, overdraft limit %s)",
		ErrOverdraftExceeded.Error(), e.AccountID, e.AttemptedAmount.StringFixed(2), e.Balance.StringFixed(2), e.OverdraftLimit.StringFixed(2))
}

// Is lets errors.Is(err, ErrOverdraftExceeded) match any OverdraftError.
func (e *OverdraftError) Is(target error) bool {
	return target == ErrOverdraftExceeded
}

// Available returns how much could still be debited without breaking the limit.
func (e *OverdraftError) Available() decimal.Decimal {
	return e.Balance.Add(e.OverdraftLimit)
}

// AppError wraps an infrastructure failure with a status-like code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches ErrInternal for 5xx codes so callers can classify without knowing the code.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}
