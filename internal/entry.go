// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/lifetrack/internal/api"
	"github.com/starford/lifetrack/internal/configwatch"
	"github.com/starford/lifetrack/internal/mcpserver"
	"github.com/starford/lifetrack/internal/sse"
	"github.com/starford/lifetrack/internal/storage"
	"github.com/starford/lifetrack/internal/tracker"
	pkgconfig "github.com/starford/lifetrack/pkg/config"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}

// newLogger installs a JSON logger whose level can be changed at runtime.
func newLogger(w io.Writer, level slog.Level) (*slog.Logger, *slog.LevelVar) {
	lv := new(slog.LevelVar)
	lv.Set(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv}))
	slog.SetDefault(logger)
	return logger, lv
}

func openStore(cfg StorageConfig, clock func() time.Time) (storage.Store, error) {
	switch cfg.Backend {
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return storage.OpenSQLite(cfg.SQLite.Path, storage.WithClock(clock))
	case BackendMemory, "":
		return storage.NewMemory(storage.WithClock(clock)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// clockIn reports the current time in loc, so that its calendar day is the
// local "today".
func clockIn(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}

// NewHTTPHandler builds the root router: health probes, the API under /api
// and, when staticDir is set, the web client.
func NewHTTPHandler(cfg *Config, svc *tracker.Service, events http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := svc.Notes(r.Context()); err != nil {
			slog.Error("readiness check failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, events))

	if cfg.App.HTTP.StaticDir != "" {
		r.Handle("/*", api.StaticHandler(cfg.App.HTTP.StaticDir))
	}

	return r
}

// Run starts the HTTP server with the given options and blocks until ctx is
// cancelled or a shutdown signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger, level := newLogger(os.Stdout, cfg.App.LogLevel)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.String("sqlite_path", cfg.Storage.SQLite.Path),
		slog.String("timezone", cfg.App.Location().String()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	clock := clockIn(cfg.App.Location())

	store, err := openStore(cfg.Storage, clock)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()

	broker := sse.NewBroker(cfg.Events.DashboardThrottle)
	defer broker.Close()

	svc := tracker.New(store,
		tracker.WithClock(clock),
		tracker.WithLocation(cfg.App.Location()),
		tracker.WithPublisher(broker),
	)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewHTTPHandler(cfg, svc, broker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	if app.configPath != "" {
		g.Go(func() error {
			err := configwatch.Watch(gCtx, app.configPath, level, readLogLevel, logger)
			if err != nil {
				logger.Warn("config watcher disabled", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		// Open event streams never finish on their own.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group once the server has been asked to stop so
// that the config watcher exits too.
var errShutdown = errors.New("shutdown")

// RunMCP serves the tracker over MCP on stdin/stdout until the client
// disconnects. Logs go to stderr because stdout carries the protocol.
func RunMCP(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	newLogger(os.Stderr, cfg.App.LogLevel)

	clock := clockIn(cfg.App.Location())
	store, err := openStore(cfg.Storage, clock)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()

	svc := tracker.New(store,
		tracker.WithClock(clock),
		tracker.WithLocation(cfg.App.Location()),
	)
	return mcpserver.New(svc).ServeStdio()
}

func readLogLevel(path string) (slog.Level, error) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		return 0, err
	}
	return cfg.App.LogLevel, nil
}
