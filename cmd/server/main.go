package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"boldstore-be/internal/account"
	"boldstore-be/internal/api"
	"boldstore-be/internal/cart"
	"boldstore-be/internal/catalog"
	"boldstore-be/internal/checkout"
	"boldstore-be/internal/config"
	"boldstore-be/internal/db"
	"boldstore-be/internal/events"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/profile"
	"boldstore-be/internal/search"
	"boldstore-be/internal/storage"
	"boldstore-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	initDBFunc       = db.InitDB
	connectRedisFunc = storage.Connect
	startServerFunc  = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// backend is the storage the services share plus how to check and release it.
type backend struct {
	kv    storage.Store
	ping  func(ctx context.Context) error
	close func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		database := initDBFunc(cfg)
		return &backend{
			kv:    storage.NewPostgres(database),
			ping:  database.PingContext,
			close: database.Close,
		}, nil
	case config.StorageRedis:
		client, err := connectRedisFunc(ctx, cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		return &backend{
			kv:    storage.NewRedis(client),
			ping:  func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: client.Close,
		}, nil
	default:
		return &backend{
			kv:    storage.NewMemory(),
			close: func() error { return nil },
		}, nil
	}
}

// newPublisher sends order events to Kafka when a broker is configured and to
// the log otherwise. The returned func closes the writer.
func newPublisher(cfg *config.Config) (events.Publisher, func() error) {
	if cfg.KafkaBroker == "" {
		return events.LogPublisher{}, func() error { return nil }
	}

	w := events.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
	return events.NewKafkaPublisher(w), w.Close
}

func newServer(cfg *config.Config, kv storage.Store, publisher events.Publisher, ping func(ctx context.Context) error) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogSvc := catalog.NewService(catalog.NewSeededRepository())
	cartSvc := cart.NewService(kv, catalogSvc)

	return api.NewRouter(api.Services{
		Accounts: account.NewService(kv, cartSvc),
		Catalog:  catalogSvc,
		Carts:    cartSvc,
		Search:   search.NewService(kv, catalogSvc),
		Profiles: profile.NewService(kv),
		Wishlist: wishlist.NewService(kv, catalogSvc),
		Checkout: checkout.NewService(kv, cartSvc, publisher),
		Ping:     ping,
	}, api.Options{CORSOrigin: cfg.CORSOrigin})
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(cfg, store.kv, publisher, store.ping),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.L().Info("server starting",
		zap.String("addr", srv.Addr),
		zap.String("storage", cfg.StorageDriver),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- startServerFunc(srv) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
