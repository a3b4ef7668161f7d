// Package metrics defines the Prometheus instruments exported on
// /metrics.  The handlers increment them; the engine itself stays
// free of observability concerns.
package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the seat booking service.
type Metrics struct {
    SeatsBooked      prometheus.Counter
    SeatsFreed       prometheus.Counter
    FailedOperations *prometheus.CounterVec
    LedgerCorruption prometheus.Counter
}

// New creates and registers the service metrics under the given
// namespace.
func New(namespace string) *Metrics {
    return &Metrics{
        SeatsBooked: promauto.NewCounter(prometheus.CounterOpts{
            Namespace: namespace,
            Name:      "seats_booked_total",
            Help:      "The total number of successful seat bookings",
        }),
        SeatsFreed: promauto.NewCounter(prometheus.CounterOpts{
            Namespace: namespace,
            Name:      "seats_freed_total",
            Help:      "The total number of released seats",
        }),
        FailedOperations: promauto.NewCounterVec(prometheus.CounterOpts{
            Namespace: namespace,
            Name:      "failed_operations_total",
            Help:      "Rejected operations by kind and reason",
        }, []string{"operation", "reason"}),
        LedgerCorruption: promauto.NewCounter(prometheus.CounterOpts{
            Namespace: namespace,
            Name:      "ledger_corruption_total",
            Help:      "Detected grid/ledger consistency violations",
        }),
    }
}
