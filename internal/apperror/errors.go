package apperror

import (
	"errors"
	"net/http"
)

// Machine-readable codes returned in the "code" field of error envelopes.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeDuplicateEntry = "DUPLICATE_ENTRY"
	CodeInternal       = "INTERNAL_ERROR"
	CodeInvalidJSON    = "INVALID_JSON"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)

// Kind identifies which variant of the taxonomy an Error belongs to.
type Kind int

const (
	KindGeneric Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "generic"
	}
}

// ErrInvalidJSON marks a request body that could not be decoded.
var ErrInvalidJSON = errors.New("invalid json")

// Error is an expected, client-facing failure. Handlers return it and the
// global error handler turns it into an error envelope.
//
// Message is shown to the client as-is, so it must never carry internal
// details. Cause is kept for logs and errors.Is / errors.As only.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Code       string
	Cause      error
}

// New builds a generic Error with an ad-hoc status. A zero status means 500.
func New(message string, statusCode int, code string) *Error {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &Error{Kind: KindGeneric, Message: message, StatusCode: statusCode, Code: code}
}

// Validation reports invalid input (400, VALIDATION_ERROR).
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest, Code: CodeValidation}
}

// Auth reports a missing or invalid identity (401, UNAUTHORIZED).
// An empty message defaults to "Unauthorized".
func Auth(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{Kind: KindAuth, Message: message, StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized}
}

// Forbidden reports an authenticated caller lacking access (403, FORBIDDEN).
func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return &Error{Kind: KindForbidden, Message: message, StatusCode: http.StatusForbidden, Code: CodeForbidden}
}

// NotFound reports a missing resource (404, NOT_FOUND).
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusNotFound, Code: CodeNotFound}
}

// Conflict reports a state conflict such as a duplicate record (409, CONFLICT).
func Conflict(message string) *Error {
	if message == "" {
		message = "Conflict"
	}
	return &Error{Kind: KindConflict, Message: message, StatusCode: http.StatusConflict, Code: CodeConflict}
}

// InvalidJSON wraps a body decoding failure so it classifies as INVALID_JSON.
func InvalidJSON(cause error) error {
	if cause == nil {
		return ErrInvalidJSON
	}
	return &wrapped{sentinel: ErrInvalidJSON, cause: cause}
}

// Error implements the error interface. Only the message is rendered.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error with the same kind, code and message, so copies
// made by WithCode and WithCause still match their source.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code && e.Message == t.Message
}

// WithCode returns a copy of e with its machine code replaced.
// An empty code keeps the variant's default.
func (e *Error) WithCode(code string) *Error {
	if code == "" {
		return e
	}
	cp := *e
	cp.Code = code
	return &cp
}

// WithCause returns a copy of e that wraps err.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}

// KindOf returns the taxonomy kind of err, or KindGeneric when err is not an *Error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindGeneric
}

type wrapped struct {
	sentinel error
	cause    error
}

func (w *wrapped) Error() string { return w.sentinel.Error() + ": " + w.cause.Error() }

func (w *wrapped) Unwrap() []error { return []error{w.sentinel, w.cause} }
