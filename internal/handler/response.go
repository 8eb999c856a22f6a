package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bahikhata/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Every caller-input error is a 400; nothing the engine returns is fatal.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest, "INVALID_RATE", err.Error()
	case errors.Is(err, domain.ErrMissingGSTIN):
		return http.StatusBadRequest, "MISSING_GSTIN", err.Error()
	case errors.Is(err, domain.ErrMalformedGSTIN):
		return http.StatusBadRequest, "MALFORMED_GSTIN", err.Error()
	case errors.Is(err, domain.ErrUnknownStateCode):
		return http.StatusBadRequest, "UNKNOWN_STATE_CODE", err.Error()
	case errors.Is(err, domain.ErrUnknownSection):
		return http.StatusBadRequest, "UNKNOWN_SECTION", err.Error()
	case errors.Is(err, domain.ErrUnknownTCSSection):
		return http.StatusBadRequest, "UNKNOWN_TCS_SECTION", err.Error()
	case errors.Is(err, domain.ErrInvalidQuarter):
		return http.StatusBadRequest, "INVALID_QUARTER", err.Error()
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, "INVALID_PERIOD", err.Error()
	case errors.Is(err, domain.ErrInvalidFinancialYear):
		return http.StatusBadRequest, "INVALID_FINANCIAL_YEAR", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// HandleError maps a service error onto the response envelope.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	RespondError(c, status, code, msg)
}
