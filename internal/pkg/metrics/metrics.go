// Package metrics defines and registers the custom Prometheus metrics of the
// clinic records API. It is the single source of truth for metric names,
// labels and help strings.
//
// Metrics register with the default registry on import; HTTP request metrics
// come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthEventsTotal counts account and session events.
// Labels:
//   - event: "register", "login", "logout", "authenticate", "password_reset"
//   - outcome: "success" or a short failure reason (e.g. "bad_credentials")
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events, by event and outcome.",
	},
	[]string{"event", "outcome"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordWritesTotal counts successful writes to clinic records.
// Labels:
//   - entity: "patient", "immunization" or "finance"
//   - op: "create", "update" or "delete"
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of clinic record writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailDispatchTotal counts outbound email attempts.
// Label:
//   - result: "sent", "failed" or "dropped" (queue full)
var MailDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_dispatch_total",
		Help:      "Total number of outbound emails, by result.",
	},
	[]string{"result"},
)

// MailQueueDepth is the number of emails waiting for a worker.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in the mail dispatcher.",
	},
)

// MailSendDuration measures a single SMTP delivery.
var MailSendDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_send_duration_seconds",
		Help:      "Duration of a single email delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
)
