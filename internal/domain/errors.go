package domain

import "errors"

var (
	// Record errors
	ErrUnknownEventType = errors.New("unknown event type")
	ErrMalformedRecord  = errors.New("malformed event record")
	ErrMissingAmount    = errors.New("amount required for this event type")
	ErrUnexpectedAmount = errors.New("amount not allowed for this event type")
	ErrNegativeAmount   = errors.New("amount must not be negative")

	// Processing errors
	ErrDuplicateTransaction = errors.New("transaction id already recorded")
	ErrUnknownTransaction   = errors.New("transaction id not found")
	ErrClientMismatch       = errors.New("transaction owned by a different client")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrAccountLocked        = errors.New("account is locked")
	ErrNotDisputed          = errors.New("transaction is not under dispute")
	ErrAlreadyDisputed      = errors.New("transaction is already under dispute")
	ErrChargedBack          = errors.New("transaction was charged back")
)
