package domain

import "github.com/shopspring/decimal"

// ClientID identifies a client account.
type ClientID uint16

// Account holds the per-client balances and lock flag. Total is always
// derived from Available and Held, never stored.
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount creates a zero-balance, unlocked account.
func NewAccount(client ClientID) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns the sum of available and held funds.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Credit adds amount to the available funds.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
}

// Debit removes amount from the available funds. The available balance
// must cover the amount in full; there is no partial debit.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Available = a.Available.Sub(amount)
	return nil
}

// HoldFunds moves amount from available to held.
func (a *Account) HoldFunds(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// ReleaseHold moves amount from held back to available.
func (a *Account) ReleaseHold(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// ChargeBack withdraws amount from held funds entirely and locks the
// account. The total drops because held drops.
func (a *Account) ChargeBack(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
