package dto

import (
	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// AccountResponse is the JSON rendering of one client account. Balances
// are decimal strings with the output precision of four places.
type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// AccountFromDomain converts a domain account.
func AccountFromDomain(a domain.Account) AccountResponse {
	return AccountResponse{
		Client:    uint16(a.Client),
		Available: a.Available.StringFixed(4),
		Held:      a.Held.StringFixed(4),
		Total:     a.Total().StringFixed(4),
		Locked:    a.Locked,
	}
}

// AccountsFromDomain converts a snapshot.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountFromDomain(a))
	}
	return out
}
