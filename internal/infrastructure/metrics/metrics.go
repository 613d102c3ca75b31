package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the processing engine.
type Metrics struct {
	// Event metrics
	EventsApplied  *prometheus.CounterVec
	EventsRejected *prometheus.CounterVec

	// Dispute lifecycle metrics
	DisputesOpened   prometheus.Counter
	DisputesResolved prometheus.Counter
	Chargebacks      prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsLocked  prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EventsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_events_applied_total",
				Help: "Total number of events applied to the ledger",
			},
			[]string{"type"},
		),
		EventsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_events_rejected_total",
				Help: "Total number of events dropped without effect",
			},
			[]string{"type", "reason"},
		),
		DisputesOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payengine_disputes_opened_total",
			Help: "Total number of disputes that placed a hold",
		}),
		DisputesResolved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payengine_disputes_resolved_total",
			Help: "Total number of disputes released by a resolve",
		}),
		Chargebacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payengine_chargebacks_total",
			Help: "Total number of chargebacks applied",
		}),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Total number of client accounts created",
		}),
		AccountsLocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_locked_total",
			Help: "Total number of accounts locked by chargebacks",
		}),
	}
}
