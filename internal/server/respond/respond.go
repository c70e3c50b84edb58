// Package respond writes JSON success and error envelopes for the HTTP API.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes used in ErrorBody.Code.
const (
	CodeValidation     = "validation_error"
	CodeTooLarge       = "payload_too_large"
	CodeAnalysisFailed = "analysis_failed"
	CodeNotFound       = "not_found"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Error aborts the request with a standardized error response. The code is
// also stored on the context for the access log.
func Error(c *gin.Context, status int, code, message string) {
	c.Set(ErrorCodeKey, code)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
	})
}

// ErrorCodeKey is the gin context key holding the last error code.
const ErrorCodeKey = "errorCode"
