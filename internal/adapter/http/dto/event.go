package dto

import (
	"github.com/shopspring/decimal"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// SubmitEventRequest is the JSON body of an event submission. Amount is
// a decimal string (or JSON number); it must be omitted on dispute,
// resolve and chargeback.
type SubmitEventRequest struct {
	Type   string           `json:"type"`
	Client uint16           `json:"client"`
	Tx     uint32           `json:"tx"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// ToDomain converts the request to a domain event.
func (r SubmitEventRequest) ToDomain() (domain.Event, error) {
	typ, err := domain.ParseEventType(r.Type)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Type:   typ,
		Client: domain.ClientID(r.Client),
		Tx:     domain.TransactionID(r.Tx),
		Amount: r.Amount,
	}, nil
}

// SubmitEventResponse acknowledges an applied event.
type SubmitEventResponse struct {
	Status string `json:"status"`
	Tx     uint32 `json:"tx"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
