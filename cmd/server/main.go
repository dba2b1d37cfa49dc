package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "go_currency_converter/docs"
	"go_currency_converter/internal/app"
	"go_currency_converter/internal/config"
	"go_currency_converter/internal/converter"
	"go_currency_converter/internal/external"
	"go_currency_converter/internal/handlers"
	"go_currency_converter/internal/logger"
	"go_currency_converter/internal/metrics"
	"go_currency_converter/internal/middleware"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/theme"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Currency Converter API
// @version 1.0
// @description Конвертер валют по курсам exchangerate-api
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.External.APIKey == "" {
		log.Warn("EXCHANGE_API_KEY is empty, provider requests will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := app.OpenThemeStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open theme store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Error("Failed to close theme store")
		}
	}()
	themes := theme.NewController(ctx, store, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	rates := external.New(&cfg.External, log).WithObserver(m)
	conv := converter.New(rates, cfg.External.BaseCurrency, log).WithRecorder(m)
	handler := handlers.New(conv, themes, log, models.SupportedCurrencies).WithRecorder(m)

	router := mux.NewRouter()
	router.Use(
		middleware.RecoveryMiddleware(log),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.MetricsMiddleware(m.HTTPRequestsTotal),
	)
	middleware.CountUnmatched(router, m.HTTPRequestsTotal)
	handler.RegisterRoutes(router)

	handler.RegisterAPIRoutes(router.PathPrefix("/api/v1").Subrouter())

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      middleware.CORSMiddleware()(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
