package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"walletfx/internal/adapters/cache"
	"walletfx/internal/adapters/httpclient"
	"walletfx/internal/api"
	"walletfx/internal/config"
	httpserver "walletfx/internal/platform/http"
	"walletfx/internal/platform/metrics"
	"walletfx/internal/render"
	"walletfx/internal/wallet"
	"walletfx/internal/wallet/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Run wires the application components, starts the first activation, the scheduler and HTTP server
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	setupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	walletMetrics := metrics.NewWalletMetrics(registry)

	// Activation registry
	activationCache, err := cache.NewActivationCache(appCfg.Cache.MaxActivations, appCfg.Cache.TTL())
	if err != nil {
		logrus.WithError(err).Error("Failed to create activation cache")
		return err
	}
	defer activationCache.Close()

	// Services
	aggregator := newAggregator(appCfg, walletMetrics)
	walletService := wallet.NewService(ctx, aggregator, activationCache)
	activationID := walletService.Activate()
	logrus.WithField("activation_id", activationID).Info("✅ Wallet activation started")

	scheduler := wallet.NewScheduler(walletService, appCfg.Scheduler.Interval())
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}

	// Handlers and router
	walletHandler := handler.NewWalletHandler(walletService)
	router := api.NewRouter(walletHandler, walletMetrics.Handler())

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router)
	if serverErr != nil {
		// Cancel the root context to stop scheduler and in-flight activations
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
	}
	return multierr.Append(serverErr, scheduler.Shutdown())
}

// RunOnce performs a single activation, renders the wallet to w and returns the fetch error, if any.
func RunOnce(w io.Writer) error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	setupLogger(appCfg.Logging)
	// stdout belongs to the rendered screen
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return renderOnce(ctx, newAggregator(appCfg, nil), w)
}

func renderOnce(ctx context.Context, aggregator *wallet.Aggregator, w io.Writer) error {
	act := aggregator.Activate(ctx)
	vm, err := act.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for activation: %w", err)
	}
	if renderErr := render.Console(w, vm); renderErr != nil {
		return fmt.Errorf("failed to render wallet: %w", renderErr)
	}
	if vm.Error != nil {
		return vm.Error
	}
	return nil
}

func newAggregator(appCfg *config.AppConfig, walletMetrics *metrics.WalletMetrics) *wallet.Aggregator {
	// Base HTTP client (configurable timeout)
	baseHTTPClient := &http.Client{Timeout: appCfg.HTTPClient.Timeout()}
	rateClient := httpclient.NewAwesomeAPIClient(baseHTTPClient, strings.TrimSpace(appCfg.Provider.BaseURL))

	opts := []wallet.AggregatorOption{
		wallet.WithActivationTimeout(appCfg.Wallet.ActivationTimeout()),
		wallet.WithMetrics(walletMetrics),
	}
	if appCfg.Wallet.StrictBids {
		opts = append(opts, wallet.WithBidPolicy(wallet.BidPolicyStrict))
	}
	return wallet.NewAggregator(rateClient, wallet.NewWalletFilter(), opts...)
}

func setupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
