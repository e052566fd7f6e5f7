// Package metrics holds the Prometheus collectors for report lifecycle
// operations. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	reportsCreated *prometheus.CounterVec
	statusChanges  *prometheus.CounterVec
	votes          *prometheus.CounterVec
	failures       *prometheus.CounterVec
	rateLimited    prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		reportsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "civictrack_reports_created_total",
			Help: "reports created, by issue type",
		}, []string{"issue_type"}),
		statusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "civictrack_report_status_changes_total",
			Help: "status updates applied, by resulting status",
		}, []string{"status"}),
		votes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "civictrack_votes_total",
			Help: "votes cast or removed",
		}, []string{"action"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "civictrack_lifecycle_failures_total",
			Help: "lifecycle operations that failed, by operation",
		}, []string{"operation"}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "civictrack_report_rate_limited_total",
			Help: "report submissions rejected by the rate limiter",
		}),
	}
}

func (m *Metrics) ReportCreated(issueType string) {
	if m == nil {
		return
	}
	m.reportsCreated.WithLabelValues(issueType).Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) Vote(action string) {
	if m == nil {
		return
	}
	m.votes.WithLabelValues(action).Inc()
}

func (m *Metrics) Failure(operation string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(operation).Inc()
}

func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
