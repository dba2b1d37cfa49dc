package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит все метрики конвертера
type Metrics struct {
	// Конвертации по исходу: success, validation_error, unsupported_currency, fetch_error, ...
	ConversionsTotal *prometheus.CounterVec

	// Запросы к провайдеру курсов
	RateFetchTotal    *prometheus.CounterVec
	RateFetchDuration *prometheus.HistogramVec

	ThemeTogglesTotal *prometheus.CounterVec

	HTTPRequestsTotal *prometheus.CounterVec
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "Total number of conversion requests by outcome",
			},
			[]string{"outcome"},
		),
		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fetch_total",
				Help: "Total number of exchange rate provider calls by outcome",
			},
			[]string{"outcome"},
		),
		RateFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_fetch_duration_seconds",
				Help:    "Latency of exchange rate provider calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		ThemeTogglesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "theme_toggles_total",
				Help: "Total number of theme toggles by resulting theme",
			},
			[]string{"theme"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ObserveFetch учитывает один запрос к провайдеру
func (m *Metrics) ObserveFetch(outcome string, duration time.Duration) {
	m.RateFetchTotal.WithLabelValues(outcome).Inc()
	m.RateFetchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// ObserveConversion учитывает одну конвертацию
func (m *Metrics) ObserveConversion(outcome string) {
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveThemeToggle учитывает переключение темы
func (m *Metrics) ObserveThemeToggle(theme string) {
	m.ThemeTogglesTotal.WithLabelValues(theme).Inc()
}
