// Package apierror provides the error envelope shared by every route.
// All 4xx/5xx bodies go through this package so clients always see the same
// {kind, message} shape and internal details (driver errors, SQL) never leak.
package apierror

// Kind classifies an error for clients.
type Kind string

const (
	KindBadRequest      Kind = "bad_request"
	KindValidation      Kind = "validation"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindTooManyRequests Kind = "too_many_requests"
	KindInternal        Kind = "internal"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func New(kind Kind, msg string) *APIError {
	return &APIError{Kind: kind, Message: msg}
}

func BadRequest(msg string) *APIError   { return New(KindBadRequest, msg) }
func Unauthorized(msg string) *APIError { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *APIError    { return New(KindForbidden, msg) }
func NotFound(msg string) *APIError     { return New(KindNotFound, msg) }
func Conflict(msg string) *APIError     { return New(KindConflict, msg) }

// Internal never carries the underlying cause; callers log it instead.
func Internal() *APIError { return New(KindInternal, "Error interno del servidor") }

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Kind: KindValidation, Message: "Error de validacion", Fields: fields}
}
