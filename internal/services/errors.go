package services

import "errors"

// Business-rule errors surfaced to the route layer. Handlers translate them
// with errors.Is; anything not listed here maps to an internal error.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrIncorrectPassword    = errors.New("unauthorized: incorrect password")
	ErrConfirmationRequired = errors.New("confirmation string must be 'yes'")
	ErrTrackingNotFound     = errors.New("tracking info not found for this order")
)

// ConfirmDeletion is the sentinel a caller must supply, alongside their
// password, to authorize account deletion.
const ConfirmDeletion = "yes"
