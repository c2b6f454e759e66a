// Command pitchpilot runs the match highlight analysis HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coachos/pitchpilot/internal/adapters/cache"
	"github.com/coachos/pitchpilot/internal/adapters/http/api"
	"github.com/coachos/pitchpilot/internal/adapters/statsbomb"
	"github.com/coachos/pitchpilot/internal/adapters/video"
	"github.com/coachos/pitchpilot/internal/app"
	"github.com/coachos/pitchpilot/internal/config"
	"github.com/coachos/pitchpilot/internal/domain/oracle"
	"github.com/coachos/pitchpilot/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := buildCache(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to initialize cache", logger.Error(err))
		return
	}

	client := statsbomb.NewClient(
		statsbomb.WithCache(store),
		statsbomb.WithLogger(log.Named("statsbomb")),
	)
	oracles := oracle.Load(ctx, cfg.ModelsDir, oracle.WithLogger(log.Named("oracle")))

	svc := app.New(
		app.WithLogger(log),
		app.WithClient(client),
		app.WithOracles(oracles),
		app.WithVideoSync(video.New(cfg.VideoID, nil)),
		app.WithDefaultMatch(cfg.MatchID),
		app.WithHomeSide(cfg.HomeSide),
		app.WithTopN(cfg.DefaultTopN, cfg.MaxTopN),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// buildCache selects the cache backend named by configuration.
func buildCache(ctx context.Context, cfg *config.Config, log logger.Logger) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case "redis":
		c, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "using redis cache", logger.String("url", cfg.RedisURL))
		return c, nil
	case "none":
		return cache.Nop(), nil
	default:
		c, err := cache.NewDisk(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "using disk cache", logger.String("dir", cfg.DataDir))
		return c, nil
	}
}
