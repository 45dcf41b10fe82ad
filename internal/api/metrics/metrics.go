// Package metrics defines and registers all custom Prometheus metrics for
// the skillshare API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillshare"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_taken", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Social graph metrics ──────────────────────────────────────────────────────

// FollowMutationsTotal counts successful follow graph mutations.
// Label:
//   - op: "follow" or "unfollow"
var FollowMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "follow_mutations_total",
		Help:      "Total number of successful follow/unfollow operations.",
	},
	[]string{"op"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsEmittedTotal counts notifications successfully persisted.
// Label:
//   - type: "comment", "like", "follow"
var NotificationsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of notifications successfully persisted, by type.",
	},
	[]string{"type"},
)

// NotificationsFailedTotal counts notification emissions that were lost.
// These failures never propagate to the triggering operation; this counter
// is the only place they remain visible.
// Label:
//   - reason: short description of the failure (e.g. "persist")
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification emissions that failed and were dropped.",
	},
	[]string{"reason"},
)

// NotificationsDedupTotal counts suppression decisions.
// Label:
//   - result: "hit" (suppressed) or "miss" (emitted)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of notification dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
