package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidationRejected  = errors.New("validation rejected")
	ErrGatewayUnreachable  = errors.New("gateway unreachable")
	ErrGatewayError        = errors.New("gateway error")
	ErrPersistenceFailure  = errors.New("persistence failure")
	ErrSubmissionPending   = errors.New("a submission is already pending")
	ErrNoActiveSession     = errors.New("no active session")
	ErrInvalidTransition   = errors.New("invalid mode transition")
	ErrUnsupportedSchema   = errors.New("unsupported record schema version")
	ErrUnknownExportFormat = errors.New("unknown export format")
)

// GatewayError carries the gateway operation and HTTP status behind one of the
// gateway sentinels (or ErrValidationRejected for 400/422 answers).
type GatewayError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err == nil:
		return e.Op
	default:
		return e.Op + ": " + e.Err.Error()
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationRejected, fmt.Sprintf(format, args...))
}
