package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletfx/internal/config"
	"walletfx/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string, strict bool) *config.AppConfig {
	return &config.AppConfig{
		HTTPClient: config.HTTPClient{TimeoutSeconds: 2},
		Provider:   config.Provider{BaseURL: baseURL},
		Wallet:     config.Wallet{StrictBids: strict, ActivationTimeoutSeconds: 2},
	}
}

func TestRenderOnce_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"USD": {"code":"USD","codein":"BRL","name":"Dólar Americano/Real Brasileiro","bid":"5.10"},
			"CAD": {"code":"CAD","codein":"BRL","name":"Dólar Canadense/Real Brasileiro","bid":"3.70"},
			"EUR": {"code":"EUR","codein":"BRL","name":"Euro/Real Brasileiro","bid":"6.20"}
		}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := renderOnce(context.Background(), newAggregator(testConfig(srv.URL, false), nil), &buf)

	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "$ 11.30\n")
	require.Contains(t, out, "USD  Dólar Americano/Real Brasileiro\n")
	require.NotContains(t, out, "CAD")
}

func TestRenderOnce_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := renderOnce(context.Background(), newAggregator(testConfig(srv.URL, false), nil), &buf)

	require.Error(t, err)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	require.Equal(t, domain.KindNetwork, kind)
	require.Contains(t, buf.String(), "Could not load rates (network error)")
}

func TestRenderOnce_StrictBids(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"USD":{"code":"USD","codein":"BRL","name":"Dólar","bid":"N/A"}}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := renderOnce(context.Background(), newAggregator(testConfig(srv.URL, true), nil), &buf)

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	require.Equal(t, domain.KindParse, kind)
}

func TestRenderOnce_ContextEnds(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	err := renderOnce(ctx, newAggregator(testConfig(srv.URL, false), nil), &buf)
	require.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetFormatter(&logrus.TextFormatter{})
	defer logrus.SetLevel(logrus.InfoLevel)

	setupLogger(config.Logging{Level: "debug", Format: "json"})
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	setupLogger(config.Logging{Level: "nonsense", Format: "text"})
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
