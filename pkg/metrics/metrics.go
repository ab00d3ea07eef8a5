package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики gateway API
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики исходящих вызовов Telegram Bot API
	telegramRequestsTotal   *prometheus.CounterVec
	telegramRequestDuration *prometheus.HistogramVec

	// Количество отложенных сообщений в планировщике
	scheduledMessages prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed by the gateway API",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request processing duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		telegramRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telegram_api_requests_total",
			Help: "Total number of outgoing Telegram Bot API calls",
		}, []string{"service", "endpoint", "outcome"}),

		telegramRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "telegram_api_request_duration_seconds",
			Help:    "Outgoing Telegram Bot API call duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "endpoint"}),

		scheduledMessages: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scheduled_messages",
			Help: "Number of messages currently waiting in the in-memory scheduler",
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveTelegramRequest фиксирует исходящий вызов Telegram Bot API
// outcome: "success" или "error"
func (m *Metrics) ObserveTelegramRequest(endpoint, outcome string, duration time.Duration) {
	m.telegramRequestsTotal.WithLabelValues(m.serviceName, endpoint, outcome).Inc()
	m.telegramRequestDuration.WithLabelValues(m.serviceName, endpoint).Observe(duration.Seconds())
}

// SetScheduledMessages обновляет количество отложенных сообщений
func (m *Metrics) SetScheduledMessages(n int) {
	m.scheduledMessages.Set(float64(n))
}
