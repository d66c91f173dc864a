// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

// Postgres error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-scoped validation failures. It covers both
// application-level checks and uniqueness violations reported by the
// database, which are surfaced to callers the same way.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func NewValidationError(field, message string) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, message)
	return ve
}

// ReferentialIntegrityError means a foreign key referenced a nonexistent row.
// Unlike ValidationError this is caller error, not user-correctable input.
type ReferentialIntegrityError struct {
	Constraint string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referential integrity violation on %s", e.Constraint)
}

// validationErrorFromStruct converts go-playground/validator failures into a
// field-scoped ValidationError.
func validationErrorFromStruct(err error) *ValidationError {
	ve := &ValidationError{}
	for _, fe := range utils.GetValidationErrors(err) {
		ve.Add(fe.Field, fe.Message)
	}
	if len(ve.Errors) == 0 {
		ve.Add("base", err.Error())
	}
	return ve
}

// uniqueConstraintFields maps the unique indexes the schema declares onto the
// field and message a caller should see. The database constraint is the
// source of truth; any pre-check in the services is advisory only.
var uniqueConstraintFields = map[string]FieldError{
	"idx_users_email":                            {Field: "email", Message: "has already been taken"},
	"idx_products_barcode":                       {Field: "barcode", Message: "has already been taken"},
	"idx_inventories_on_product_id_and_store_id": {Field: "product_id", Message: "and store combination must be unique"},
}

// translateConstraintError maps storage-level constraint failures to domain
// errors. The gorm postgres driver reports them as *pgconn.PgError; *pq.Error
// is handled as well for callers going through database/sql with lib/pq.
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}

	code, constraint := pgErrorDetails(err)
	switch code {
	case pgUniqueViolation:
		if fe, ok := uniqueConstraintFields[constraint]; ok {
			return NewValidationError(fe.Field, fe.Message)
		}
		return NewValidationError("base", "has already been taken")
	case pgForeignKeyViolation:
		return &ReferentialIntegrityError{Constraint: constraint}
	}

	return err
}

func pgErrorDetails(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}

	return "", ""
}
