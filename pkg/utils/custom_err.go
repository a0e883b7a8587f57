package utils

import "errors"

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrDatabaseError    = errors.New("database error")
)
