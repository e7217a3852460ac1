package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	// RequestSubmitted counts employee requests created, labeled by type.
	RequestSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "request_submitted_total",
			Help:      "Employee requests submitted.",
		},
		[]string{"type"},
	)

	// RequestResolved counts admin decisions, labeled by type and decision.
	RequestResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "request_resolved_total",
			Help:      "Employee requests resolved by an admin.",
		},
		[]string{"type", "decision"},
	)

	// ClaimSubmitted counts open shift claims created.
	ClaimSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "open_shift_claim_submitted_total",
			Help:      "Open shift claims submitted.",
		},
	)

	// ClaimResolved counts open shift claim decisions.
	ClaimResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "open_shift_claim_resolved_total",
			Help:      "Open shift claims resolved by an admin.",
		},
		[]string{"decision"},
	)

	// AssignmentConflicts counts approvals that lost the race for a shift.
	AssignmentConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "assignment_conflicts_total",
			Help:      "Approvals rejected because the shift was already taken.",
		},
	)
)

// Register registers all collectors with the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestSubmitted,
			RequestResolved,
			ClaimSubmitted,
			ClaimResolved,
			AssignmentConflicts,
		)
	})
}
