package engine

import (
	"sort"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// Snapshot returns a copy of every client account, ascending by client
// id so that rendered output is diff-stable.
func (p *Processor) Snapshot() []domain.Account {
	accounts := make([]domain.Account, 0, len(p.accounts))
	for _, account := range p.accounts {
		accounts = append(accounts, *account)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Client < accounts[j].Client
	})
	return accounts
}

// Account returns a copy of one client's account, if it exists.
func (p *Processor) Account(client domain.ClientID) (domain.Account, bool) {
	account, ok := p.accounts[client]
	if !ok {
		return domain.Account{}, false
	}
	return *account, true
}
