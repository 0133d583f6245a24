package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carson-networks/expense-server/internal/categorize"
)

const namespace = "expense_server"

const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

// Metrics holds the server's counters. A nil *Metrics records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	loads       *prometheus.CounterVec
	classified  *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_loads_total",
			Help:      "Transaction loads from the source, by result.",
		}, []string{"result"}),
		classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classified_transactions_total",
			Help:      "Transactions assigned to each category.",
		}, []string{"category"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions to the invoice endpoint, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.loads,
		m.classified,
		m.submissions,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveLoad(result string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(result).Inc()
}

// ObserveSnapshot counts the transactions of every bucket under its category.
func (m *Metrics) ObserveSnapshot(snapshot categorize.Snapshot) {
	if m == nil {
		return
	}
	for _, bucket := range snapshot.Buckets() {
		m.classified.WithLabelValues(bucket.Category().String()).Add(float64(bucket.Count()))
	}
}

func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}
