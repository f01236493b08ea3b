// Package pgerr normalizes PostgreSQL driver errors into the stable
// structured shape the API exposes to callers, and maps SQLSTATE classes
// to HTTP status codes.
//
// Classification happens exactly once, here: the executor propagates the
// original *pgconn.PgError untouched, and handlers pass it through
// Normalize/StatusFor when composing the failure envelope.
package pgerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes and codes this layer classifies on.
// Full list: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classIntegrityViolation = "23"    // FK, unique, check, not-null
	classDataException      = "22"    // invalid input syntax / type
	codeInsufficientPriv    = "42501" // insufficient_privilege

	// codeInvalidTextRepresentation is raised by request-side validation
	// (invalid timestamp format) so manual checks classify identically to
	// native data exceptions.
	codeInvalidTextRepresentation = "22P02"
)

// Normalized is the stable error shape exposed to API callers, extracted
// from a caller-opaque database error. Every field is always serialized;
// fields the underlying error lacks are null, never omitted, so consumers
// can rely on field presence.
type Normalized struct {
	Code       *string `json:"code"`
	Message    string  `json:"message"`
	Constraint *string `json:"constraint"`
	Detail     *string `json:"detail"`
	Schema     *string `json:"schema"`
	Table      *string `json:"table"`
	Column     *string `json:"column"`
	DataType   *string `json:"dataType"`
	Where      *string `json:"where"`
	Hint       *string `json:"hint"`
}

// Normalize extracts the structured fields from err. Extraction is
// defensive: an error missing any field (or not a PgError at all) still
// produces a complete Normalized value and never panics.
func Normalize(err error) Normalized {
	n := Normalized{}
	if err == nil {
		return n
	}
	n.Message = err.Error()

	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return n
	}

	if pg.Message != "" {
		n.Message = pg.Message
	}
	n.Code = optional(pg.Code)
	n.Constraint = optional(pg.ConstraintName)
	n.Detail = optional(pg.Detail)
	n.Schema = optional(pg.SchemaName)
	n.Table = optional(pg.TableName)
	n.Column = optional(pg.ColumnName)
	n.DataType = optional(pg.DataTypeName)
	n.Where = optional(pg.Where)
	n.Hint = optional(pg.Hint)
	return n
}

// StatusFor maps a normalized error to an HTTP status code.
// Ordered policy, first match wins:
//
//	class 23 (integrity constraint violation) → 400
//	class 22 (data exception)                 → 400
//	42501 (insufficient privilege)            → 403
//	anything else                             → 500
func StatusFor(n Normalized) int {
	code := ""
	if n.Code != nil {
		code = *n.Code
	}
	switch {
	case strings.HasPrefix(code, classIntegrityViolation):
		return 400
	case strings.HasPrefix(code, classDataException):
		return 400
	case code == codeInsufficientPriv:
		return 403
	default:
		return 500
	}
}

// DataException builds the error raised by request-side validation
// (e.g. an unparseable timestamp). It is a real *pgconn.PgError so the
// normal Normalize/StatusFor path classifies it as a class-22 failure.
func DataException(msg string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     codeInvalidTextRepresentation,
		Message:  msg,
	}
}

// optional maps the empty string to an absent (null) field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
