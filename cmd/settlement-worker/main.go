package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
	ametrics "github.com/radieske/vehicle-auction-poc/internal/auction-service/metrics"
	"github.com/radieske/vehicle-auction-poc/internal/auction-service/repo"
	"github.com/radieske/vehicle-auction-poc/internal/settlement-worker/gateway"
	"github.com/radieske/vehicle-auction-poc/internal/settlement-worker/worker"
	"github.com/radieske/vehicle-auction-poc/internal/shared/config"
	"github.com/radieske/vehicle-auction-poc/internal/shared/db"
	"github.com/radieske/vehicle-auction-poc/internal/shared/kafka"
	"github.com/radieske/vehicle-auction-poc/internal/shared/logger"
	"github.com/radieske/vehicle-auction-poc/internal/shared/metrics"
)

var (
	consumedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "settlement_messages_consumed_total",
		Help: "mensagens auction_closed consumidas",
	})
	chargedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_gateway_charges_total",
		Help: "respostas do gateway por status",
	}, []string{"status"})
	dlqTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_dlq_total",
		Help: "mensagens enviadas para a DLQ por etapa",
	}, []string{"stage"})
	errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_errors_total",
		Help: "falhas por etapa",
	}, []string{"stage"})
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "settlement-worker"
	}
	log, err := logger.NewWithLevel(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres: conciliação da cobrança e lançamento do pagamento no ledger
	pg, err := db.ConnectPostgres(cfg.PostgresDSN, db.Options{
		MaxOpenConns: cfg.PostgresMaxOpen,
		MaxIdleConns: cfg.PostgresMaxIdle,
	})
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	prometheus.MustRegister(consumedTotal, chargedTotal, dlqTotal, errorsTotal)
	m := ametrics.New(prometheus.DefaultRegisterer)
	svc := auction.NewService(repo.NewPostgres(pg), log, auction.WithHooks(m.Hooks()))

	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicAuctionClosed, "settlement-worker")
	defer reader.Close()

	p := &worker.Processor{
		Log:     log,
		Reader:  reader,
		Gateway: gateway.New(cfg.PaymentGatewayURL, cfg.PaymentCurrency, cfg.GatewayTimeout),
		Settler: svc,
		Retries: cfg.GatewayRetries,
		Backoff: cfg.GatewayBackoff,

		OnConsumed: consumedTotal.Inc,
		OnCharged:  func(status string) { chargedTotal.WithLabelValues(status).Inc() },
		OnDLQ:      func(stage string) { dlqTotal.WithLabelValues(stage).Inc() },
		OnError:    func(stage string) { errorsTotal.WithLabelValues(stage).Inc() },
	}
	if cfg.TopicAuctionClosedDLQ != "" {
		dlq := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicAuctionClosedDLQ)
		defer dlq.Close()
		p.DLQ = dlq
	}

	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	log.Info("settlement-worker started",
		zap.String("consume", cfg.TopicAuctionClosed),
		zap.String("dlq", cfg.TopicAuctionClosedDLQ),
		zap.String("gateway", cfg.PaymentGatewayURL),
	)
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("processor stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	log.Info("settlement-worker stopped")
}
