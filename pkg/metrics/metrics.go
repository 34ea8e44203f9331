package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	LoginAttemptsTotal     *prometheus.CounterVec
	BookingsConfirmedTotal *prometheus.CounterVec
	ActiveSessions         prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном registry (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		LoginAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "login_attempts_total",
			Help:        "Login attempts by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),

		BookingsConfirmedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Confirmed bookings by resource category",
			ConstLabels: labels,
		}, []string{"category"}),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of live booking sessions",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveLogin фиксирует исход попытки входа
func (m *Metrics) ObserveLogin(outcome string) {
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveConfirmation фиксирует подтвержденное бронирование
func (m *Metrics) ObserveConfirmation(category string) {
	m.BookingsConfirmedTotal.WithLabelValues(category).Inc()
}

// SetActiveSessions выставляет число живых сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}
