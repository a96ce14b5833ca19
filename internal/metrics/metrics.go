package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	registry          *prometheus.Registry
	transactionsTotal *prometheus.CounterVec
	confirmSeconds    *prometheus.HistogramVec
	requestsTotal     *prometheus.CounterVec
	requestSeconds    *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	transactions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vearn_transactions_total",
		Help: "Transactions by final lifecycle state",
	}, []string{"state"})

	confirm := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vearn_transaction_confirm_seconds",
		Help:    "Time from signing to a terminal receipt state",
		Buckets: []float64{5, 10, 20, 30, 60, 120},
	}, []string{"state"})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vearn_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vearn_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	r := prometheus.NewRegistry()
	r.MustRegister(transactions, confirm, requests, latency)

	return &Registry{
		registry:          r,
		transactionsTotal: transactions,
		confirmSeconds:    confirm,
		requestsTotal:     requests,
		requestSeconds:    latency,
	}
}

func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTransaction counts a transaction that reached state.
func (m *Registry) ObserveTransaction(state string) {
	m.transactionsTotal.WithLabelValues(state).Inc()
}

func (m *Registry) ObserveConfirmation(state string, elapsed time.Duration) {
	m.confirmSeconds.WithLabelValues(state).Observe(elapsed.Seconds())
}

func (m *Registry) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestSeconds.WithLabelValues(route).Observe(elapsed.Seconds())
}
