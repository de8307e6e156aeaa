package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	gwserver "github.com/radieske/vehicle-auction-poc/internal/payment-gateway-simulator/server"
	"github.com/radieske/vehicle-auction-poc/internal/shared/config"
	"github.com/radieske/vehicle-auction-poc/internal/shared/logger"
	"github.com/radieske/vehicle-auction-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "payment-gateway-simulator"
	}
	log, err := logger.NewWithLevel(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := gwserver.New(log, cfg.GatewayCaptureRate, prometheus.DefaultRegisterer)

	// ==== MUX DE MÉTRICAS (/healthz, /metrics)
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, nil)

	// ==== Servidor público: POST /v1/charges
	publicSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("payment gateway simulator running",
			zap.String("addr", publicSrv.Addr),
			zap.Int("capture_rate", cfg.GatewayCaptureRate),
		)
		if err := publicSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("public server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = publicSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}
