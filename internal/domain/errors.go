package domain

import (
	"errors"
	"strings"
)

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrInvalidCase        = errors.New("invalid case data")
	ErrEmptyImport        = errors.New("invalid cases data")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("all fields are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUnauthenticated    = errors.New("not authorized")
	ErrDuplicateEvent     = errors.New("duplicate event")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPageParams  = errors.New("invalid page parameters")
	ErrInvalidRequest     = errors.New("invalid request")

	ErrParse          = errors.New("failed to parse CSV")
	ErrEmptyFile      = errors.New("csv file is empty")
	ErrFileTooLarge   = errors.New("csv file exceeds maximum size")
	ErrTooManyRows    = errors.New("csv exceeds maximum allowed rows")
	ErrInvalidState   = errors.New("operation not allowed in current import state")
	ErrBatchHasErrors = errors.New("please fix validation errors before importing")
	ErrEmptyBatch     = errors.New("no rows to import")
	ErrSubmitInFlight = errors.New("an import is already in progress")
	ErrSubmission     = errors.New("import failed")
	ErrRowNotFound    = errors.New("row not found")
	ErrStaleResult    = errors.New("import result discarded after restart")
)

// CaseValidationError carries every rule violation of a single case.
type CaseValidationError struct {
	Errors []FieldError
}

func (e *CaseValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return ErrInvalidCase.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *CaseValidationError) Unwrap() error {
	return ErrInvalidCase
}
