package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the "code" field of every error body.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError is the JSON body written for every failed request. Message keeps
// the wording admin clients show to operators.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

var fallbackMessages = map[string]string{
	ErrCodeInvalidInput:  "Invalid request",
	ErrCodeNotFound:      "Resource not found",
	ErrCodeConflict:      "Resource conflict",
	ErrCodeInternalError: "Internal server error",
}

// abort writes the error body and stops the remaining handlers in the chain.
func abort(c *gin.Context, status int, code, message string, details interface{}) {
	if message == "" {
		message = fallbackMessages[code]
	}
	c.AbortWithStatusJSON(status, &APIError{Code: code, Message: message, Details: details})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	abort(c, http.StatusNotFound, ErrCodeNotFound, message, nil)
}

// BadRequest sends a 400 response for a body that could not be decoded or
// carried an unacceptable value.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, ErrCodeInvalidInput, message, nil)
}

// MissingFields sends a 400 response naming the absent fields.
func MissingFields(c *gin.Context, message string, fields []string) {
	abort(c, http.StatusBadRequest, ErrCodeMissingField, message, gin.H{"fields": fields})
}

// InvalidFormat sends a 400 response for a malformed path value.
func InvalidFormat(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, ErrCodeInvalidFormat, message, nil)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	abort(c, http.StatusConflict, ErrCodeConflict, message, nil)
}

// InternalError sends a 500 response. Callers pass a generic message; store
// errors are logged, not returned.
func InternalError(c *gin.Context, message string) {
	abort(c, http.StatusInternalServerError, ErrCodeInternalError, message, nil)
}
