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

	"checkout/cmd/api/handlers"
	"checkout/cmd/api/validator"
	"checkout/internal/health"
	"checkout/internal/payment"
	"checkout/kit/config"
	"checkout/kit/external_payment_gateway"
	"checkout/kit/observability"
)

func main() {
	confPath := flag.String("conf", "", "path to the YAML config file")
	flag.Parse()

	logger := observability.NewLogger("api")
	cfg, err := config.GetConfig(*confPath)
	if err != nil {
		logger.Error("config error", "error", err.Error())
		os.Exit(1)
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		logger.Error("gateway init error", "error", err.Error())
		os.Exit(1)
	}

	paymentSvc := payment.NewService(gateway)
	healthSvc := health.NewService(10*time.Second, 3*time.Second, map[string]health.CheckFunc{
		"paypal": gateway.Ping,
	})
	paymentH := handlers.NewPayment(validator.NewJSON(), paymentSvc, healthSvc)

	srv := &http.Server{Addr: cfg.API.Addr, Handler: handlers.NewRouter(paymentH), ReadHeaderTimeout: 2 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api server started", "addr", srv.Addr, "mode", cfg.PayPal.Mode, "fake", cfg.PayPal.Fake)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("api server error", "error", err.Error())
	}
	logger.Info("api server stopped")
}

func newGateway(cfg *config.Config) (external_payment_gateway.Gateway, error) {
	if cfg.PayPal.Fake {
		return external_payment_gateway.NewFakeGateway(""), nil
	}
	return external_payment_gateway.NewPayPalGateway(external_payment_gateway.PayPalConfig{
		ClientID:     cfg.PayPal.ClientID,
		ClientSecret: cfg.PayPal.ClientSecret,
		Live:         cfg.IsLive(),
		ProductID:    cfg.PayPal.ProductID,
		BrandName:    cfg.PayPal.BrandName,
	})
}
