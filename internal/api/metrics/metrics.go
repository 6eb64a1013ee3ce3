// Package metrics defines and registers all custom Prometheus metrics for the
// staff portal gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staffportal"

// LoginsTotal counts credential login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registration attempts.
// Label:
//   - result: "success" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// FederatedLoginsTotal counts completed federated callback flows.
// Label:
//   - result: "success" or "failure"
var FederatedLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "federated_logins_total",
		Help:      "Total number of federated login callbacks, by result.",
	},
	[]string{"result"},
)

// FederatedLoginDuration measures the full callback handling time, dominated
// by the two provider round-trips (code exchange, profile fetch).
var FederatedLoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "federated_login_duration_seconds",
		Help:      "Duration of federated login callback handling.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RoleUpdatesTotal counts roster role changes that persisted.
// Label:
//   - role: the new role applied
var RoleUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_updates_total",
		Help:      "Total number of staff role updates, by new role.",
	},
	[]string{"role"},
)
