package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "criativoio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "criativoio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "criativoio_generations_total",
			Help: "Total number of generation requests by outcome",
		},
		[]string{"status", "mode"},
	)

	CreditsDebitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "criativoio_credits_debited_total",
			Help: "Total credits debited for delivered generations",
		},
	)

	DebitFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "criativoio_credit_debit_failures_total",
			Help: "Generations delivered without a committed debit",
		},
	)

	RechargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "criativoio_recharges_total",
			Help: "Total number of credit recharges",
		},
		[]string{"path"},
	)

	CreditsAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "criativoio_credits_added_total",
			Help: "Total credits added via recharges",
		},
	)

	AccountPurgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "criativoio_account_purges_total",
			Help: "Total number of account purges",
		},
		[]string{"status"},
	)

	RealtimeSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "criativoio_realtime_subscribers",
			Help: "Currently connected realtime balance subscribers",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordGeneration(status, mode string) {
	GenerationsTotal.WithLabelValues(status, mode).Inc()
}

func RecordDebit(cost int64) {
	CreditsDebitedTotal.Add(float64(cost))
}

func RecordDebitFailure() {
	DebitFailuresTotal.Inc()
}

func RecordRecharge(path string, amount int64) {
	RechargesTotal.WithLabelValues(path).Inc()
	CreditsAddedTotal.Add(float64(amount))
}

func RecordPurge(status string) {
	AccountPurgesTotal.WithLabelValues(status).Inc()
}
