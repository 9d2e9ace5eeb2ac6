package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/usestring/wetrace/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeWetraceError     = "WETRACE_ERROR"
	ErrCodeConnectionFailed = "CONNECTION_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeTimeout          = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapClientError maps an error from the Wetrace client to a coded error.
// Timeouts are checked before connection failures because a deadline hit
// while dialing surfaces as both.
func WrapClientError(err error) error {
	if err == nil {
		return nil
	}

	var (
		coded   *CodedError
		apiErr  *client.APIError
		connErr *client.ConnectionError
		netErr  net.Error
	)
	switch {
	case errors.As(err, &coded):
		return coded
	case errors.Is(err, client.ErrSessionRequired),
		errors.Is(err, client.ErrTalkerRequired),
		errors.Is(err, client.ErrUnknownKind):
		return &CodedError{Code: ErrCodeInvalidInput, Message: err.Error(), Cause: err}
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		coded = &CodedError{Code: ErrCodeNotFound, Message: apiErr.Message, Cause: err}
	case errors.As(err, &apiErr):
		coded = &CodedError{Code: ErrCodeWetraceError, Message: apiErr.Error(), Cause: err}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	case errors.As(err, &connErr):
		coded = &CodedError{Code: ErrCodeConnectionFailed, Message: connErr.Error(), Cause: err}
	default:
		coded = &CodedError{Code: ErrCodeWetraceError, Message: err.Error(), Cause: err}
	}

	slog.Warn("wetrace API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)
	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
