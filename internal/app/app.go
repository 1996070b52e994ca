package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/data/db"
	"github.com/yungbote/person-api/internal/http"
	"github.com/yungbote/person-api/internal/observability"
	"github.com/yungbote/person-api/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Store    *db.Service
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	otelShutdown func(context.Context) error
}

// Version is stamped at build time via -ldflags.
var Version = "dev"

// New connects the store, migrates it and wires the HTTP stack.
func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := OpenStore(cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if err := db.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, err
	}
	theDB := store.DB()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(log)
		if err := metrics.RegisterDB(theDB, "person_api"); err != nil {
			log.Warn("db stats collector not registered", "error", err)
		}
	}

	otelShutdown, err := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		ServiceName: cfg.Otel.ServiceName,
		Version:     Version,
		Exporter:    cfg.Otel.Exporter,
		Endpoint:    cfg.Otel.Endpoint,
		Insecure:    cfg.Otel.Insecure,
		SampleRatio: cfg.Otel.SampleRatio,
	})
	if err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("init otel: %w", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, reposet)
	handlerset := wireHandlers(log, serviceset, store)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Store:        store,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		otelShutdown: otelShutdown,
	}, nil
}

// OpenStore opens the configured database without migrating it.
func OpenStore(cfg Config, log *logger.Logger) (*db.Service, error) {
	store, err := db.Open(cfg.DBConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return store, nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	ln, err := net.Listen("tcp", a.Cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Server.Serve(gctx, ln, a.Cfg.HTTP.ShutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutdown requested")
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
