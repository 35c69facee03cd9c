package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ogurasousui/sistemadp/internal/adapters/grpc/handler"
	"github.com/ogurasousui/sistemadp/internal/adapters/httpapi"
	"github.com/ogurasousui/sistemadp/internal/adapters/repository/postgres"
	"github.com/ogurasousui/sistemadp/internal/adapters/repository/sheet"
	sessionredis "github.com/ogurasousui/sistemadp/internal/adapters/session/redis"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/cache"
	"github.com/ogurasousui/sistemadp/internal/platform/config"
	pg "github.com/ogurasousui/sistemadp/internal/platform/db/postgres"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
	"github.com/ogurasousui/sistemadp/internal/platform/metrics"
	"github.com/ogurasousui/sistemadp/internal/platform/server"
)

const shutdownTimeout = 10 * time.Second

// rosterStore は従業員マスタの読み取りと取り込みの両方を提供します。
type rosterStore interface {
	roster.Repository
	httpapi.RosterImporter
}

// stores はバックエンドごとに組み立てたリポジトリです。
type stores struct {
	archive  archive.Repository
	logs     archive.LogWriter
	roster   rosterStore
	tx       archive.TransactionManager
	workbook *flatstore.Workbook
	closers  []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(logging.Options{Format: cfg.Log.Format, Level: cfg.Log.Level})
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	m := metrics.New()

	st, err := openStores(ctx, cfg, m, logger)
	if err != nil {
		return err
	}
	defer st.close()

	sessions, closeSessions, err := openSessions(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	archiveSvc := archive.NewService(st.archive, st.logs, nil, st.tx,
		archive.WithLogger(logger),
		archive.WithRecorder(m),
		archive.WithBatchSize(cfg.Archive.BatchSize),
	)
	auditSvc := reconcile.NewService(archiveSvc, st.roster, logger, m)

	services := server.Services{
		Archive: handler.NewArchiveGrpcHandler(archiveSvc, sessions, logger),
		Audit:   handler.NewAuditGrpcHandler(auditSvc, sessions, logger),
	}
	deps := httpapi.Deps{
		Auditor:    auditSvc,
		Roster:     st.roster,
		Sessions:   sessions,
		Metrics:    m,
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		Production: cfg.IsProduction(),
	}

	if st.workbook != nil {
		terminationSvc := termination.NewService(sheet.NewTerminationSyncer(st.workbook, m), st.roster, nil, logger)
		services.Termination = handler.NewTerminationGrpcHandler(terminationSvc)
		deps.Terminations = terminationSvc
	} else {
		logger.Warn("termination tracker disabled: sheet.path is not set")
	}

	grpcServer := server.New(cfg.Server.ListenAddr, services, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening", slog.String("addr", cfg.Server.ListenAddr), slog.String("backend", cfg.Backend))
		return grpcServer.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*stores, error) {
	st := &stores{}

	if cfg.Sheet.Path != "" {
		wb, err := sheet.Open(cfg.Sheet.Path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", cfg.Sheet.Path, err)
		}
		st.workbook = wb
	}

	switch cfg.Backend {
	case config.BackendSheet:
		st.archive = sheet.NewArchiveRepository(st.workbook, m)
		st.logs = sheet.NewLogWriter(st.workbook, m, logger)
		st.roster = sheet.NewRosterRepository(st.workbook, m)
	default:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("initialize database pool: %w", err)
		}
		st.closers = append(st.closers, pool.Close)
		st.archive = postgres.NewArchiveRepository(pool)
		st.logs = postgres.NewLogWriter(pool)
		st.roster = postgres.NewRosterRepository(pool)
		st.tx = pg.NewTransactionManager(pool, logger)
	}
	return st, nil
}

func openSessions(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (session.Store, func(), error) {
	if cfg.Addr == "" {
		logger.Info("selection store: in-process memory")
		return session.NewMemoryStore(), func() {}, nil
	}

	client, err := cache.New(ctx, cache.Config{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err != nil {
		return nil, nil, fmt.Errorf("initialize redis: %w", err)
	}
	logger.Info("selection store: redis", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.SelectionTTL))
	return sessionredis.NewStore(client, cfg.SelectionTTL), func() { _ = client.Close() }, nil
}
