package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWalletMetrics_ObserveSuccess(t *testing.T) {
	m := NewWalletMetrics(prometheus.NewRegistry())

	m.ObserveSuccess(time.Now(), 2, 11.3)

	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(OutcomeSuccess, "")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.RetainedCurrencies))
	require.InDelta(t, 11.3, testutil.ToFloat64(m.TotalBalance), 1e-9)
}

func TestWalletMetrics_ObserveFailure(t *testing.T) {
	m := NewWalletMetrics(prometheus.NewRegistry())

	m.ObserveFailure(time.Now(), "network")
	m.ObserveFailure(time.Now(), "network")
	m.ObserveFailure(time.Now(), "decode")

	require.Equal(t, 2.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(OutcomeFailure, "network")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(OutcomeFailure, "decode")))
}

func TestWalletMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *WalletMetrics
	require.NotPanics(t, func() {
		m.ObserveSuccess(time.Now(), 1, 1)
		m.ObserveFailure(time.Now(), "parse")
		m.ObserveActivation()
	})
}

func TestWalletMetrics_Handler(t *testing.T) {
	m := NewWalletMetrics(nil)
	m.ObserveActivation()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "walletfx_activations_started_total 1")
}
