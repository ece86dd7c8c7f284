package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout/cmd/web/consumers"
	"checkout/cmd/web/handlers"
	"checkout/internal/audit"
	"checkout/internal/events"
	"checkout/kit/backend_client"
	"checkout/kit/broker"
	"checkout/kit/config"
	"checkout/kit/observability"
)

func main() {
	confPath := flag.String("conf", "", "path to the YAML config file")
	auditPath := flag.String("audit", "./out/audit.jsonl", "checkout event trail, empty to only log")
	flag.Parse()

	logger := observability.NewLogger("web")
	cfg, err := config.GetConfig(*confPath)
	if err != nil {
		logger.Error("config error", "error", err.Error())
		os.Exit(1)
	}

	metricsKit := observability.NewMetrics()
	bus := broker.New()
	defer bus.Close()

	auditSvc := audit.NewService(observability.NewLogger("audit"))
	if *auditPath != "" {
		auditSvc, err = audit.NewServiceWithFile(observability.NewLogger("audit"), *auditPath)
		if err != nil {
			logger.Error("audit init error", "error", err.Error())
			os.Exit(1)
		}
	}
	defer func() { _ = auditSvc.Close() }()

	bus.SubscribeAll(consumers.NewMetricsEvent(metricsKit).HandleAny, events.All()...)
	bus.SubscribeAll(consumers.NewAuditEvent(auditSvc).HandleAny, events.All()...)

	backend := backend_client.NewCircuitBreakerClient(
		backend_client.New(cfg.Web.BackendURL, cfg.Web.BackendTimeout),
		backend_client.CircuitBreakerConfig{
			FailureThreshold: 3,
			SuccessThreshold: 1,
			OpenTimeout:      5 * time.Second,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		t := time.NewTicker(30 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				snap := metricsKit.Snapshot()
				kv := make([]any, 0, 2*len(snap))
				for k, v := range snap {
					kv = append(kv, k, v)
				}
				logger.Info("metrics snapshot", kv...)
			}
		}
	}()

	pageH := handlers.NewPage(backend, bus, cfg.Web.PublicURL)
	metricsH := handlers.NewMetrics(metricsKit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pageH.Index)
	mux.HandleFunc("POST /checkout/one-time", pageH.OneTime)
	mux.HandleFunc("POST /checkout/recurring", pageH.Recurring)
	mux.HandleFunc("GET /metrics", metricsH.Handler)

	srv := &http.Server{Addr: cfg.Web.Addr, Handler: mux, ReadHeaderTimeout: 2 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("web server started", "addr", srv.Addr, "backend", cfg.Web.BackendURL, "debug", cfg.IsDebug)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("web server error", "error", err.Error())
	}
	logger.Info("web server stopped")
}
