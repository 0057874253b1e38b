// Package metrics exposes Prometheus counters for the webhook and comment paths.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Webhook delivery outcomes.
const (
	OutcomeProcessed      = "processed"
	OutcomeIgnored        = "ignored"
	OutcomeMisconfigured  = "misconfigured"
	OutcomeMissingHeaders = "missing_headers"
	OutcomeInvalidSig     = "invalid_signature"
	OutcomeMalformed      = "malformed"
	OutcomeSyncFailed     = "sync_failed"
)

// Recorder is what handlers report to. Tests can pass a Collector built on a
// private registry.
type Recorder interface {
	RecordWebhook(outcome string)
	RecordUserSynced()
	RecordCommentCreated()
}

type Collector struct {
	webhookDeliveries *prometheus.CounterVec
	usersSynced       prometheus.Counter
	commentsCreated   prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		webhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intervue_webhook_deliveries_total",
			Help: "Identity provider webhook deliveries by outcome.",
		}, []string{"outcome"}),
		usersSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intervue_users_synced_total",
			Help: "user.created events projected into the user directory.",
		}),
		commentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intervue_comments_created_total",
			Help: "Interview comments stored.",
		}),
	}

	reg.MustRegister(c.webhookDeliveries, c.usersSynced, c.commentsCreated)
	return c
}

func (c *Collector) RecordWebhook(outcome string) {
	c.webhookDeliveries.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordUserSynced() {
	c.usersSynced.Inc()
}

func (c *Collector) RecordCommentCreated() {
	c.commentsCreated.Inc()
}

// Handler serves /metrics for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
