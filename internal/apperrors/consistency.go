package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Postgres SQLSTATE codes handled by WrapConsistencyError.
const (
	pgUniqueViolation        = "23505"
	pgNotNullViolation       = "23502"
	pgForeignKeyViolation    = "23503"
	pgCheckViolation         = "23514"
	pgInvalidTextRepr        = "22P02"
	pgNumericValueOutOfRange = "22003"
)

// FieldError describes one offending field of a validation or uniqueness failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the stable shape for constraint and input validation failures.
type ValidationErrors struct {
	Errors []FieldError
	cause  error
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), joinFieldErrors(e.Errors))
}

func (e *ValidationErrors) Is(target error) bool { return target == ErrValidation }

func (e *ValidationErrors) Unwrap() error { return e.cause }

// UniquenessErrors is the stable shape for unique constraint violations.
type UniquenessErrors struct {
	Errors []FieldError
	cause  error
}

func (e *UniquenessErrors) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicate.Error(), joinFieldErrors(e.Errors))
}

func (e *UniquenessErrors) Is(target error) bool { return target == ErrDuplicate }

func (e *UniquenessErrors) Unwrap() error { return e.cause }

// NewValidationErrors builds a ValidationErrors from explicit field errors.
func NewValidationErrors(fields ...FieldError) *ValidationErrors {
	return &ValidationErrors{Errors: fields}
}

// WrapConsistencyError normalizes persistence constraint failures and struct validation
// failures into ValidationErrors or UniquenessErrors. Any other error is returned unchanged.
func WrapConsistencyError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs *ValidationErrors
	var uniquenessErrs *UniquenessErrors
	if errors.As(err, &validationErrs) || errors.As(err, &uniquenessErrs) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPgError(pgErr, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return fromSQLiteError(liteErr, err)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fromValidatorErrors(fieldErrs, err)
	}

	return err
}

func fromPgError(pgErr *pgconn.PgError, cause error) error {
	switch pgErr.Code {
	case pgUniqueViolation:
		fields := columnsFromPgDetail(pgErr.Detail)
		if len(fields) == 0 {
			fields = []string{pgErr.ConstraintName}
		}
		return &UniquenessErrors{Errors: fieldErrors(fields, "must be unique"), cause: cause}
	case pgNotNullViolation:
		return &ValidationErrors{Errors: fieldErrors([]string{pgErr.ColumnName}, "is required"), cause: cause}
	case pgForeignKeyViolation:
		fields := columnsFromPgDetail(pgErr.Detail)
		if len(fields) == 0 {
			fields = []string{pgErr.ConstraintName}
		}
		return &ValidationErrors{Errors: fieldErrors(fields, "references a missing record"), cause: cause}
	case pgCheckViolation:
		return &ValidationErrors{Errors: fieldErrors([]string{pgErr.ConstraintName}, "violates check constraint"), cause: cause}
	case pgInvalidTextRepr, pgNumericValueOutOfRange:
		field := pgErr.ColumnName
		if field == "" {
			field = "value"
		}
		return &ValidationErrors{Errors: []FieldError{{Field: field, Message: pgErr.Message}}, cause: cause}
	}
	return cause
}

// columnsFromPgDetail extracts the column list from details like
// "Key (user_id, name)=(u1, Wallet) already exists."
func columnsFromPgDetail(detail string) []string {
	start := strings.Index(detail, "Key (")
	if start < 0 {
		return nil
	}
	rest := detail[start+len("Key ("):]
	end := strings.Index(rest, ")=")
	if end < 0 {
		return nil
	}
	cols := strings.Split(rest[:end], ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func fromSQLiteError(liteErr *sqlite.Error, cause error) error {
	code := liteErr.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return cause
	}
	msg := liteErr.Error()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return &UniquenessErrors{Errors: fieldErrors(columnsFromSQLiteMessage(msg), "must be unique"), cause: cause}
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return &ValidationErrors{Errors: fieldErrors(columnsFromSQLiteMessage(msg), "is required"), cause: cause}
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return &ValidationErrors{Errors: []FieldError{{Field: "reference", Message: "references a missing record"}}, cause: cause}
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return &ValidationErrors{Errors: fieldErrors(columnsFromSQLiteMessage(msg), "violates check constraint"), cause: cause}
	}
	return &ValidationErrors{Errors: []FieldError{{Field: "value", Message: msg}}, cause: cause}
}

// columnsFromSQLiteMessage extracts columns from messages like
// "UNIQUE constraint failed: accounts.user_id, accounts.name (2067)".
func columnsFromSQLiteMessage(msg string) []string {
	idx := strings.LastIndex(msg, "constraint failed: ")
	if idx < 0 {
		return []string{"value"}
	}
	rest := msg[idx+len("constraint failed: "):]
	if paren := strings.LastIndex(rest, " ("); paren >= 0 {
		rest = rest[:paren]
	}
	parts := strings.Split(rest, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if dot := strings.LastIndex(p, "."); dot >= 0 && !strings.ContainsAny(p, " ><=") {
			p = p[dot+1:]
		}
		if p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}

func fromValidatorErrors(fieldErrs validator.ValidationErrors, cause error) error {
	out := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return &ValidationErrors{Errors: out, cause: cause}
}

func fieldErrors(fields []string, message string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldError{Field: f, Message: message})
	}
	return out
}

func joinFieldErrors(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" "+e.Message)
	}
	return strings.Join(parts, "; ")
}
