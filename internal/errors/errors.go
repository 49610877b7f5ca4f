// Package errors defines the tagged application error every failure
// in the validation engine is wrapped into. Each error carries enough
// context (operation, affected path or column, cause) to diagnose a
// failed run without a debugger.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies what failed
type Kind string

const (
	KindSchemaLoad           Kind = "SCHEMA_LOAD"
	KindTableRead            Kind = "TABLE_READ"
	KindStructuralValidation Kind = "STRUCTURAL_VALIDATION"
	KindDriftComputation     Kind = "DRIFT_COMPUTATION"
	KindOutputWrite          Kind = "OUTPUT_WRITE"
	KindConfigInvalid        Kind = "CONFIG_INVALID"
)

// AppError represents a structured application error
type AppError struct {
	Kind    Kind
	Op      string // originating operation, e.g. "read_table"
	Path    string // affected file path, if any
	Column  string // affected column, if any
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %s)", e.Path)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %s)", e.Column)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// SchemaLoad builds a schema-load failure for a document path
func SchemaLoad(op, path string, cause error) *AppError {
	return &AppError{Kind: KindSchemaLoad, Op: op, Path: path, Message: "schema document unreadable or malformed", Cause: cause}
}

// TableRead builds a table-read failure for a file path
func TableRead(op, path string, cause error) *AppError {
	return &AppError{Kind: KindTableRead, Op: op, Path: path, Message: "table file missing, unreadable, or unparsable", Cause: cause}
}

// StructuralValidation builds a structural mismatch failure, named per
// table and per kind of mismatch.
func StructuralValidation(op, path, message string) *AppError {
	return &AppError{Kind: KindStructuralValidation, Op: op, Path: path, Message: message}
}

// DriftComputation builds a drift-test failure naming the offending column
func DriftComputation(op, column string, cause error) *AppError {
	return &AppError{Kind: KindDriftComputation, Op: op, Column: column, Message: "column values cannot be compared", Cause: cause}
}

// OutputWrite builds an output persistence failure for a target path
func OutputWrite(op, path string, cause error) *AppError {
	return &AppError{Kind: KindOutputWrite, Op: op, Path: path, Message: "output file cannot be created or written", Cause: cause}
}

// ConfigInvalid builds a configuration failure
func ConfigInvalid(op, message string) *AppError {
	return &AppError{Kind: KindConfigInvalid, Op: op, Message: message}
}

// KindOf returns the error's kind, or "" for foreign errors
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
