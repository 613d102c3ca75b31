package engine

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/metrics"
)

// Policy holds the engine's runtime-configurable extension points.
type Policy struct {
	// FreezeOnLock rejects any further event against a locked account.
	// Off by default: a chargeback locks the account but mutation
	// continues to be accepted.
	FreezeOnLock bool

	// StrictDisputes enforces the settled/disputed state machine per
	// ledger entry: a dispute needs a settled entry, resolve and
	// chargeback need an active dispute, and a charged-back entry
	// accepts no further dispute actions. Off by default because it
	// changes observable balances.
	StrictDisputes bool
}

// Processor is the transaction-state-tracking engine. It owns the map
// of transaction ids to ledger entries and the map of client ids to
// accounts, and applies one event at a time in input order.
//
// Apply never aborts the batch: every rejected event is a no-op and the
// returned error only reports why it was dropped. The Processor is not
// safe for concurrent use; callers feeding it from multiple goroutines
// must serialize access.
type Processor struct {
	accounts map[domain.ClientID]*domain.Account
	entries  map[domain.TransactionID]*domain.Entry
	policy   Policy
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// New creates an empty Processor. metrics may be nil.
func New(policy Policy, logger zerolog.Logger, m *metrics.Metrics) *Processor {
	return &Processor{
		accounts: make(map[domain.ClientID]*domain.Account),
		entries:  make(map[domain.TransactionID]*domain.Entry),
		policy:   policy,
		logger:   logger,
		metrics:  m,
	}
}

// Apply processes a single event. A non-nil error means the event was
// dropped with no partial mutation; the error is informational only and
// must not stop the stream.
func (p *Processor) Apply(ev domain.Event) error {
	var err error

	switch ev.Type {
	case domain.EventDeposit:
		err = p.applyDeposit(ev)
	case domain.EventWithdrawal:
		err = p.applyWithdrawal(ev)
	case domain.EventDispute:
		err = p.applyDispute(ev)
	case domain.EventResolve:
		err = p.applyResolve(ev)
	case domain.EventChargeback:
		err = p.applyChargeback(ev)
	default:
		err = domain.ErrUnknownEventType
	}

	if err != nil {
		p.logger.Debug().
			Str("type", string(ev.Type)).
			Uint16("client", uint16(ev.Client)).
			Uint32("tx", uint32(ev.Tx)).
			Err(err).
			Msg("event dropped")

		if p.metrics != nil {
			p.metrics.EventsRejected.WithLabelValues(string(ev.Type), rejectReason(err)).Inc()
		}
		return err
	}

	if p.metrics != nil {
		p.metrics.EventsApplied.WithLabelValues(string(ev.Type)).Inc()
	}
	return nil
}

func (p *Processor) applyDeposit(ev domain.Event) error {
	if err := validateAmount(ev); err != nil {
		return err
	}
	if _, exists := p.entries[ev.Tx]; exists {
		return domain.ErrDuplicateTransaction
	}

	account := p.account(ev.Client)
	if p.policy.FreezeOnLock && account.Locked {
		return domain.ErrAccountLocked
	}

	account.Credit(*ev.Amount)
	p.record(ev, domain.PolarityCredit)
	return nil
}

func (p *Processor) applyWithdrawal(ev domain.Event) error {
	if err := validateAmount(ev); err != nil {
		return err
	}
	if _, exists := p.entries[ev.Tx]; exists {
		return domain.ErrDuplicateTransaction
	}

	// A failed withdrawal must not create the account as a side effect.
	account, ok := p.accounts[ev.Client]
	if !ok {
		return domain.ErrInsufficientFunds
	}
	if p.policy.FreezeOnLock && account.Locked {
		return domain.ErrAccountLocked
	}
	if err := account.Debit(*ev.Amount); err != nil {
		return err
	}

	p.record(ev, domain.PolarityDebit)
	return nil
}

func (p *Processor) applyDispute(ev domain.Event) error {
	entry, account, err := p.resolveReference(ev)
	if err != nil {
		return err
	}
	if p.policy.StrictDisputes {
		if entry.ChargedBack {
			return domain.ErrChargedBack
		}
		if entry.Disputed {
			return domain.ErrAlreadyDisputed
		}
	}

	account.HoldFunds(entry.Amount)
	entry.Disputed = true

	if p.metrics != nil {
		p.metrics.DisputesOpened.Inc()
	}
	return nil
}

func (p *Processor) applyResolve(ev domain.Event) error {
	entry, account, err := p.resolveReference(ev)
	if err != nil {
		return err
	}
	if p.policy.StrictDisputes {
		if entry.ChargedBack {
			return domain.ErrChargedBack
		}
		if !entry.Disputed {
			return domain.ErrNotDisputed
		}
	}

	account.ReleaseHold(entry.Amount)
	entry.Disputed = false

	if p.metrics != nil {
		p.metrics.DisputesResolved.Inc()
	}
	return nil
}

func (p *Processor) applyChargeback(ev domain.Event) error {
	entry, account, err := p.resolveReference(ev)
	if err != nil {
		return err
	}
	if p.policy.StrictDisputes {
		if entry.ChargedBack {
			return domain.ErrChargedBack
		}
		if !entry.Disputed {
			return domain.ErrNotDisputed
		}
	}

	wasLocked := account.Locked
	account.ChargeBack(entry.Amount)
	entry.Disputed = false
	entry.ChargedBack = true

	if p.metrics != nil {
		p.metrics.Chargebacks.Inc()
		if !wasLocked {
			p.metrics.AccountsLocked.Inc()
		}
	}
	return nil
}

// resolveReference runs the shared checks of the dispute lifecycle
// events: no amount allowed, the referenced entry must exist and must
// belong to the citing client.
func (p *Processor) resolveReference(ev domain.Event) (*domain.Entry, *domain.Account, error) {
	if ev.Amount != nil {
		return nil, nil, domain.ErrUnexpectedAmount
	}

	entry, ok := p.entries[ev.Tx]
	if !ok {
		return nil, nil, domain.ErrUnknownTransaction
	}
	if !entry.OwnedBy(ev.Client) {
		return nil, nil, domain.ErrClientMismatch
	}

	account := p.account(ev.Client)
	if p.policy.FreezeOnLock && account.Locked {
		return nil, nil, domain.ErrAccountLocked
	}
	return entry, account, nil
}

// account returns the client's account, creating it on first reference.
func (p *Processor) account(client domain.ClientID) *domain.Account {
	if account, ok := p.accounts[client]; ok {
		return account
	}

	account := domain.NewAccount(client)
	p.accounts[client] = account

	if p.metrics != nil {
		p.metrics.AccountsCreated.Inc()
	}
	return account
}

func (p *Processor) record(ev domain.Event, polarity domain.Polarity) {
	p.entries[ev.Tx] = &domain.Entry{
		Client:   ev.Client,
		Tx:       ev.Tx,
		Amount:   *ev.Amount,
		Polarity: polarity,
	}
}

func validateAmount(ev domain.Event) error {
	if ev.Amount == nil {
		return domain.ErrMissingAmount
	}
	if ev.Amount.IsNegative() {
		return domain.ErrNegativeAmount
	}
	return nil
}

// rejectReason maps a drop error to a low-cardinality metrics label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAmount):
		return "missing_amount"
	case errors.Is(err, domain.ErrUnexpectedAmount):
		return "unexpected_amount"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_tx"
	case errors.Is(err, domain.ErrUnknownTransaction):
		return "unknown_tx"
	case errors.Is(err, domain.ErrClientMismatch):
		return "client_mismatch"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrNotDisputed):
		return "not_disputed"
	case errors.Is(err, domain.ErrAlreadyDisputed):
		return "already_disputed"
	case errors.Is(err, domain.ErrChargedBack):
		return "charged_back"
	default:
		return "other"
	}
}
