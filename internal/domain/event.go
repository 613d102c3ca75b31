package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// EventType identifies the kind of transaction event.
type EventType string

const (
	EventDeposit    EventType = "deposit"
	EventWithdrawal EventType = "withdrawal"
	EventDispute    EventType = "dispute"
	EventResolve    EventType = "resolve"
	EventChargeback EventType = "chargeback"
)

// ParseEventType parses a raw type field. Type names are case-sensitive
// lowercase; surrounding whitespace is tolerated.
func ParseEventType(raw string) (EventType, error) {
	switch t := EventType(strings.TrimSpace(raw)); t {
	case EventDeposit, EventWithdrawal, EventDispute, EventResolve, EventChargeback:
		return t, nil
	default:
		return "", ErrUnknownEventType
	}
}

// Event is the normalized representation of one input record.
// Amount is nil when the record carried no amount field.
type Event struct {
	Type   EventType
	Client ClientID
	Tx     TransactionID
	Amount *decimal.Decimal
}

// RequiresAmount reports whether this event type must carry an amount.
// Deposit and withdrawal require one; the dispute lifecycle events must
// not carry one at all.
func (t EventType) RequiresAmount() bool {
	return t == EventDeposit || t == EventWithdrawal
}

// ParseClientID parses a whitespace-padded client id field.
func ParseClientID(raw string) (ClientID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil {
		return 0, ErrMalformedRecord
	}
	return ClientID(v), nil
}

// ParseTransactionID parses a whitespace-padded transaction id field.
func ParseTransactionID(raw string) (TransactionID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, ErrMalformedRecord
	}
	return TransactionID(v), nil
}

// ParseAmount parses an optional amount field. An empty field yields
// nil (amount absent); anything non-empty must be a valid decimal.
func ParseAmount(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrMalformedRecord
	}
	return &d, nil
}
