package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/shopify"
)

func main() {
	cfg := config.FromEnv()

	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	if cfg.ShopDomain == "" {
		log.Fatal("SHOPIFY_DOMAIN must be set")
	}

	if cfg.EnableTracing {
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample())))
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{}))
		log.Info("tracing enabled")
	}

	ctx := context.Background()
	store, closeStore, err := newCartStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init cart store: %v", err)
	}
	defer closeStore()

	gateway := shopify.New(cfg.ShopDomain, cfg.APIVersion, cfg.StorefrontToken, log)
	carts := cart.NewManager(store, log)
	checkoutSvc := checkout.New(gateway, cfg.ClearCartOnCheckout, log)

	srv, err := httpserver.New(cfg.HTTPAddr, log, httpserver.Deps{
		Catalog:  gateway,
		Carts:    carts,
		Checkout: checkoutSvc,
		Tracing:  cfg.EnableTracing,
	})
	if err != nil {
		log.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		log.Errorf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	} else {
		log.Info("server stopped")
	}
}

func newCartStore(ctx context.Context, cfg config.Config) (cart.Store, func(), error) {
	switch cfg.CartStore {
	case "redis":
		store, err := cart.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		store, err := cart.NewFileStore(cfg.CartDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
