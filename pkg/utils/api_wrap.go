package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateOrder):
		RespondError(c, http.StatusBadRequest, "Order id already exists")
	case errors.Is(err, ErrInvalidOrderState):
		RespondError(c, http.StatusBadRequest, "Order is not pending, cannot confirm payment")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrSandboxOnly):
		RespondError(c, http.StatusForbidden, "Endpoint only available in sandbox mode")
	case errors.Is(err, ErrNotImplemented):
		RespondError(c, http.StatusNotImplemented, "Production payment provider not yet integrated")
	case errors.Is(err, ErrMailNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "Mail service not configured")
	case errors.Is(err, ErrIncompleteResult):
		RespondError(c, http.StatusBadRequest, "Result record is missing required fields")
	case errors.Is(err, ErrDeliveryFailed):
		log.Printf("Delivery error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to send report email")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
