package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateOrder    = errors.New("order id already exists")
	ErrInvalidOrderState = errors.New("order is not in the required state")
	ErrSandboxOnly       = errors.New("operation only available in sandbox mode")
	ErrNotImplemented    = errors.New("payment provider not implemented")
	ErrMailNotConfigured = errors.New("mail service not configured")
	ErrDeliveryFailed    = errors.New("report delivery failed")
	ErrIncompleteResult  = errors.New("result record is missing required fields")
	ErrDatabaseError     = errors.New("database error")
)
