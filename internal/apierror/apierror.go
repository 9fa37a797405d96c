// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package to keep the shape consistent
// and to prevent leaking internals (stack traces, SQL errors, etc.).
package apierror

// APIError is the canonical error envelope: a short machine-readable Error
// label plus a human-readable Message; Code carries a persistence-layer
// error code when one is available.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func New(label, msg string) *APIError {
	return &APIError{Error: label, Message: msg}
}

// Common labels, matching the HTTP status the handler responds with.
func Validation(msg string) *APIError   { return New("Validation error", msg) }
func Unauthorized(msg string) *APIError { return New("Unauthorized", msg) }
func Forbidden(msg string) *APIError    { return New("Forbidden", msg) }
func NotFound(msg string) *APIError     { return New("Not found", msg) }
func Internal(msg string) *APIError     { return New("Internal server error", msg) }

// FieldErrors wraps per-field validation failures (400 responses).
type FieldErrors struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Error: "Validation error", Message: "Erro de validacao", Fields: fields}
}
