package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/vehicle-auction-poc/internal/auction-service/auction"
	acache "github.com/radieske/vehicle-auction-poc/internal/auction-service/cache"
	ahttp "github.com/radieske/vehicle-auction-poc/internal/auction-service/http"
	ametrics "github.com/radieske/vehicle-auction-poc/internal/auction-service/metrics"
	"github.com/radieske/vehicle-auction-poc/internal/auction-service/producer"
	"github.com/radieske/vehicle-auction-poc/internal/auction-service/repo"
	"github.com/radieske/vehicle-auction-poc/internal/auction-service/scheduler"
	sharedcache "github.com/radieske/vehicle-auction-poc/internal/shared/cache"
	"github.com/radieske/vehicle-auction-poc/internal/shared/config"
	"github.com/radieske/vehicle-auction-poc/internal/shared/db"
	"github.com/radieske/vehicle-auction-poc/internal/shared/kafka"
	"github.com/radieske/vehicle-auction-poc/internal/shared/logger"
	"github.com/radieske/vehicle-auction-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "auction-service"
	}
	log, err := logger.NewWithLevel(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store: Postgres (default) ou memória para rodar sem infraestrutura
	var (
		store auction.Store
		pg    *sql.DB
	)
	switch cfg.StoreDriver {
	case "memory":
		mem := repo.NewMemory()
		seedVehicles(mem)
		store = mem
		log.Warn("using in-memory store; state is lost on restart")
	default:
		pg, err = db.ConnectPostgres(cfg.PostgresDSN, db.Options{
			MaxOpenConns:    cfg.PostgresMaxOpen,
			MaxIdleConns:    cfg.PostgresMaxIdle,
			ConnMaxLifetime: 30 * time.Minute,
		})
		if err != nil {
			log.Fatal("pg connect", zap.Error(err))
		}
		defer pg.Close()
		if err := db.Migrate(ctx, pg); err != nil {
			log.Fatal("pg migrate", zap.Error(err))
		}
		store = repo.NewPostgres(pg)
	}

	opts := []auction.Option{}

	// Redis: snapshot do leilão corrente; sem Redis o GET vai direto ao store
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = sharedcache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, snapshot cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			opts = append(opts, auction.WithCache(acache.NewSnapshotCache(rdb, cfg.SnapshotTTL)))
		}
	}

	// Kafka writers, um por tópico
	if cfg.KafkaBrokers != "" {
		opened := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicAuctionOpened)
		bids := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBidPlaced)
		closed := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicAuctionClosed)
		defer opened.Close()
		defer bids.Close()
		defer closed.Close()
		opts = append(opts, auction.WithPublisher(producer.NewKafkaPublisher(opened, bids, closed)))
	}

	m := ametrics.New(prometheus.DefaultRegisterer)
	opts = append(opts, auction.WithHooks(m.Hooks()))

	svc := auction.NewService(store, log, opts...)

	// cron: promoção de upcoming e reemissão de cobranças pendentes
	runner := scheduler.New(log, ctx)
	if err := scheduler.Schedule(runner, svc, cfg.PromoteCron, cfg.RepublishCron, cfg.RepublishAfter); err != nil {
		log.Fatal("cron schedule", zap.Error(err))
	}
	runner.Start()
	defer runner.Stop()

	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, func(ctx context.Context) error {
		if pg != nil {
			if err := pg.PingContext(ctx); err != nil {
				return fmt.Errorf("pg: %w", err)
			}
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	})

	api := ahttp.NewServer(log, svc, cfg.RequestTimeout)
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("auction-service listening", zap.String("addr", apiSrv.Addr), zap.String("store", cfg.StoreDriver))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}

// seedVehicles catálogo de demonstração para STORE_DRIVER=memory
func seedVehicles(m *repo.Memory) {
	for _, v := range []auction.Vehicle{
		{VIN: "1HGCM82633A004352", BuyNowPrice: decimal.NewFromInt(500000)},
		{VIN: "JH4KA7561PC008269", BuyNowPrice: decimal.NewFromInt(320000)},
		{VIN: "5YJSA1E26JF250001", BuyNowPrice: decimal.NewFromInt(780000)},
	} {
		m.AddVehicle(v)
	}
}
