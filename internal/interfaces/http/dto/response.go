package dto

import "net/http"

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Envelope wraps a payload under its resource key, e.g. {"product": {...}}.
type Envelope map[string]any

// NewEnvelope creates a keyed response envelope
func NewEnvelope(key string, data any) Envelope {
	return Envelope{key: data}
}

// Domain error codes mapped to HTTP status codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidState:  http.StatusBadRequest,
}

// FieldErrorCodeMapping folds the field-level codes emitted by entity
// validation into the generic input code for status mapping
var FieldErrorCodeMapping = map[string]string{
	"INVALID_NAME":     ErrCodeInvalidInput,
	"INVALID_PRICE":    ErrCodeInvalidInput,
	"INVALID_CATEGORY": ErrCodeInvalidInput,
	"INVALID_ORDER":    ErrCodeInvalidInput,
	"INVALID_PRODUCT":  ErrCodeInvalidInput,
	"INVALID_QUANTITY": ErrCodeInvalidInput,
	"INVALID_CUSTOMER": ErrCodeInvalidInput,
	"INVALID_DORM":     ErrCodeInvalidInput,
	"INVALID_STATUS":   ErrCodeInvalidInput,
	"INVALID_TOTAL":    ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a field-level error code to its generic
// form. Codes that are already generic or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if generic, ok := FieldErrorCodeMapping[code]; ok {
		return generic
	}
	return code
}

// GetHTTPStatus returns the HTTP status for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[NormalizeErrorCode(code)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
