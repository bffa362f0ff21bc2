// Package metrics defines the application's Prometheus collectors.
//
// Collectors are package-level so handlers can use them directly; Register
// attaches them to a registry and must run once per registry before serving.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "duplicate", "invalid" or "error"
var SignupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid" or "error"
var SigninsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// GateRejectionsTotal counts requests stopped by the authorization gate.
// Labels:
//   - gate: "authenticate" or "administrator"
//   - reason: "auth_missing", "auth_invalid", "auth_expired" or "forbidden"
var GateRejectionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_gate_rejections_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"gate", "reason"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// LifecycleTransitionsTotal counts successful writes to user and product rows.
// Labels:
//   - entity: "user" or "product"
//   - action: "create", "update", "deactivate" or "reactivate"
var LifecycleTransitionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_lifecycle_transitions_total",
		Help:      "Total number of successful create/update/deactivate/reactivate operations.",
	},
	[]string{"entity", "action"},
)

// Register attaches every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		SignupsTotal,
		SigninsTotal,
		GateRejectionsTotal,
		LifecycleTransitionsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
