// Package apierror provides standardized error response structures for the API
// and the domain error kinds services return. All errors returned to clients go
// through this package so storage details never leak by accident.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Error  string `json:"error,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// Kind classifies a domain failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindTransactionAbort
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindTransactionAbort:
		return "transaction_abort"
	default:
		return "unknown"
	}
}

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified domain error. Msg is safe to show to clients;
// Err carries the underlying cause for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(msg string, err error) *Error { return &Error{Kind: KindConflict, Msg: msg, Err: err} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// Abort reports a failed multi-statement write. The whole unit was rolled back.
func Abort(msg string, err error) *Error {
	return &Error{Kind: KindTransactionAbort, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, k Kind) bool { return KindOf(err) == k }

// Message returns the client-facing message of err. When showDetail is false,
// unclassified and transaction-abort causes are hidden behind fallback.
func Message(err error, fallback string, showDetail bool) string {
	var e *Error
	if !errors.As(err, &e) {
		if showDetail {
			return fallback + ": " + err.Error()
		}
		return fallback
	}
	if e.Kind == KindTransactionAbort || e.Kind == KindUnknown {
		if showDetail && e.Err != nil {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Msg
	}
	return e.Msg
}
