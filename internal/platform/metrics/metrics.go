package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// WalletMetrics tracks provider fetches made by activations.
type WalletMetrics struct {
	FetchesTotal       *prometheus.CounterVec
	FetchDuration      *prometheus.HistogramVec
	RetainedCurrencies prometheus.Gauge
	TotalBalance       prometheus.Gauge
	ActivationsStarted prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewWalletMetrics registers the collectors on reg. A nil reg gets a private registry.
func NewWalletMetrics(reg *prometheus.Registry) *WalletMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &WalletMetrics{
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletfx_fetches_total",
				Help: "Provider fetches by outcome and error kind",
			},
			[]string{"outcome", "kind"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletfx_fetch_duration_seconds",
				Help:    "Duration of provider fetches in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),
		RetainedCurrencies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "walletfx_retained_currencies",
			Help: "Currencies kept by the last successful activation",
		}),
		TotalBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "walletfx_total_balance",
			Help: "Sum of bids of the last successful activation",
		}),
		ActivationsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletfx_activations_started_total",
			Help: "Activations started",
		}),
		gatherer: reg,
	}
}

func (m *WalletMetrics) ObserveSuccess(started time.Time, retained int, total float64) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(OutcomeSuccess, "").Inc()
	m.FetchDuration.WithLabelValues(OutcomeSuccess).Observe(time.Since(started).Seconds())
	m.RetainedCurrencies.Set(float64(retained))
	m.TotalBalance.Set(total)
}

func (m *WalletMetrics) ObserveFailure(started time.Time, kind string) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(OutcomeFailure, kind).Inc()
	m.FetchDuration.WithLabelValues(OutcomeFailure).Observe(time.Since(started).Seconds())
}

func (m *WalletMetrics) ObserveActivation() {
	if m == nil {
		return
	}
	m.ActivationsStarted.Inc()
}

func (m *WalletMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
