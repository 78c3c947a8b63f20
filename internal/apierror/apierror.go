// Package apierror defines the error envelopes returned to API clients.
// Handlers never write raw error values to the wire; everything goes through
// these types so internal details (SQL errors, stack traces) stay internal.
package apierror

// APIError is the canonical envelope for all 4xx/5xx responses. It also
// implements error so services can surface user-facing messages directly.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func (e *APIError) Error() string { return e.Detail }

// ValidationError groups per-field validation failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
