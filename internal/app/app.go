package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/viovio/internal/adapter/postgres"
	confirmationrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/confirmation"
	historyrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/history"
	tokenrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/user"
	"github.com/heartmarshall/viovio/internal/adapter/provider/freedict"
	"github.com/heartmarshall/viovio/internal/auth"
	"github.com/heartmarshall/viovio/internal/config"
	"github.com/heartmarshall/viovio/internal/localdict"
	"github.com/heartmarshall/viovio/internal/scheduler"
	authsvc "github.com/heartmarshall/viovio/internal/service/auth"
	historysvc "github.com/heartmarshall/viovio/internal/service/history"
	lookupsvc "github.com/heartmarshall/viovio/internal/service/lookup"
	"github.com/heartmarshall/viovio/internal/transport/middleware"
	"github.com/heartmarshall/viovio/internal/transport/rest"
)

const rateLimiterCleanup = 5 * time.Minute

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	generator, err := newGenerator(cfg.LLM, logger)
	if err != nil {
		return err
	}

	s, err := newServer(cfg, pool, generator, prometheus.NewRegistry(), logger)
	if err != nil {
		return err
	}
	defer s.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	jobs := scheduler.New(logger)
	if err := jobs.Add("token_cleanup", cfg.Scheduler.TokenCleanupSpec, func(ctx context.Context) error {
		n, err := s.auth.CleanupExpiredTokens(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "expired tokens removed", slog.Int("count", n))
		return nil
	}); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return jobs.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}

		// Finish history writes started by lookups before the pool closes.
		s.lookup.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// server is the wired HTTP stack.
type server struct {
	handler http.Handler
	auth    *authsvc.Service
	lookup  *lookupsvc.Service
	limiter *middleware.RateLimiter
}

// newServer wires repositories, services and the router over pool.
// Metrics are registered in registry.
func newServer(
	cfg *config.Config,
	pool *pgxpool.Pool,
	generator definitionGenerator,
	registry *prometheus.Registry,
	logger *slog.Logger,
) (*server, error) {
	dict, err := localdict.Load(cfg.Lookup.DictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	confirmations := confirmationrepo.New(pool)
	histories := historyrepo.New(pool)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, confirmations, txm, jwtManager,
		authsvc.NewLogSender(logger), cfg.Auth)
	historyService := historysvc.NewService(logger, histories, historysvc.Config{
		DegradedRetry: cfg.History.DegradedRetry,
	})

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	lookupService := lookupsvc.NewService(logger,
		lookupsvc.Config{Timeout: cfg.Lookup.Timeout, PersistTimeout: cfg.History.PersistTimeout},
		dict,
		freedict.NewProvider(cfg.Pronunciation.BaseURL, cfg.Pronunciation.Timeout, logger),
		generator,
		historyService,
	).WithMetrics(lookupsvc.NewMetrics(registry))

	// Transport.
	limiter := middleware.NewRateLimiter(rateLimiterCleanup)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Auth:    rest.NewAuthHandler(authService, logger),
		Lookup:  rest.NewLookupHandler(lookupService, logger),
		History: rest.NewHistoryHandler(historyService, logger),
		Health: rest.NewHealthHandler(pool, rest.HealthInfo{
			Version:      BuildVersion(),
			Generator:    cfg.LLM.Provider + "/" + cfg.LLM.DefaultModel(),
			CuratedWords: dict.Len(),
		}),
		Validator:       authService,
		CORS:            cfg.CORS,
		Limiter:         limiter,
		LookupRateLimit: cfg.Server.LookupRateLimit,
		AuthRateLimit:   cfg.Server.AuthRateLimit,
		Metrics:         middleware.NewHTTPMetrics(registry),
		Gatherer:        registry,
	})

	return &server{
		handler: handler,
		auth:    authService,
		lookup:  lookupService,
		limiter: limiter,
	}, nil
}
