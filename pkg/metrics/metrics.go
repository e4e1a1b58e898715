package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CalendarCallsTotal   *prometheus.CounterVec
	CalendarCallDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	ParseFailuresTotal *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		CalendarCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calendar_api_calls_total",
				Help: "Total number of calendar API calls",
			},
			[]string{"service", "operation", "outcome"},
		),
		CalendarCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calendar_api_call_duration_seconds",
				Help:    "Calendar API call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"service", "operation"},
		),
		DBQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"service", "operation"},
		),
		ParseFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expression_parse_failures_total",
				Help: "Number of date/time expressions that could not be parsed",
			},
			[]string{"service", "parser"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "assistant_active_sessions",
				Help:        "Number of open conversation sessions",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CalendarCallsTotal,
		m.CalendarCallDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.ParseFailuresTotal,
		m.ActiveSessions,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveCalendarCall учитывает вызов календарного API
func (m *Metrics) ObserveCalendarCall(operation, outcome string, duration time.Duration) {
	m.CalendarCallsTotal.WithLabelValues(m.serviceName, operation, outcome).Inc()
	m.CalendarCallDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает запрос к базе данных, status "ok" или "error"
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// IncParseFailure учитывает нераспознанное выражение даты или времени
func (m *Metrics) IncParseFailure(parser string) {
	m.ParseFailuresTotal.WithLabelValues(m.serviceName, parser).Inc()
}

func (m *Metrics) SessionOpened() {
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	m.ActiveSessions.Dec()
}
