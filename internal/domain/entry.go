package domain

import "github.com/shopspring/decimal"

// TransactionID identifies a deposit or withdrawal in the ledger.
// Dispute lifecycle events reference entries by this id.
type TransactionID uint32

// Polarity marks the direction of a ledger entry.
type Polarity string

const (
	PolarityCredit Polarity = "credit"
	PolarityDebit  Polarity = "debit"
)

// Entry is the remembered state of one accepted deposit or withdrawal.
// Amount is the magnitude; Polarity carries the sign. Entries are never
// deleted, a charged-back entry stays in the ledger so later lookups
// still resolve.
type Entry struct {
	Client      ClientID
	Tx          TransactionID
	Amount      decimal.Decimal
	Polarity    Polarity
	Disputed    bool
	ChargedBack bool
}

// OwnedBy reports whether the entry belongs to the given client.
func (e *Entry) OwnedBy(client ClientID) bool {
	return e.Client == client
}
