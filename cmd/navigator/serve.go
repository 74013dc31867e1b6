package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/ai"
	"github.com/loofsan/SF-Hacks2025/internal/ai/openai"
	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/loofsan/SF-Hacks2025/internal/config"
	"github.com/loofsan/SF-Hacks2025/internal/httpapi"
	"github.com/loofsan/SF-Hacks2025/internal/search"
	"github.com/loofsan/SF-Hacks2025/internal/search/cache"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
	"github.com/loofsan/SF-Hacks2025/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run the HTTP API",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Server.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		gin.DefaultWriter = logger.Logger().Writer()

		ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		stores, closeStores, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		metrics.RegisterCollectors(prometheus.DefaultRegisterer)

		opts := httpapi.Options{Deps: map[string]func(context.Context) error{}}
		rdb := connectRedis(ctx, cfg)
		if rdb != nil {
			defer rdb.Close()
			opts.Deps["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
		opts.SearchLimiter = searchLimiter(cfg, rdb)

		var interpCache search.InterpretationCache
		if rdb != nil {
			interpCache = cache.NewRedisCache(rdb, "navigator:interp:", cache.DefaultTTL)
		}
		a := app.New(stores, newGenerator(cfg), interpCache)
		srv := &http.Server{
			Addr:         cfg.Addr(),
			Handler:      httpapi.NewRouter(a, opts),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("navigator listening on %s", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// connectRedis returns a client only when Redis is configured and answers.
func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	addr := cfg.RedisAddr()
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		_ = rdb.Close()
		return nil
	}
	logger.Infof("connected to Redis: %s", addr)
	return rdb
}

func searchLimiter(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if cfg.RateLimit.UseRedis && rdb != nil {
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		return middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
	}
	return middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

// newGenerator returns nil when the AI path is off so search runs on the
// local interpreter.
func newGenerator(cfg *config.Config) ai.TextGenerator {
	if !cfg.AIEnabled() {
		logger.Info("AI not configured, using local query interpretation")
		return nil
	}
	gen, err := openai.NewGenerator(ai.Config{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Timeout:     cfg.AI.Timeout,
		Temperature: cfg.AI.Temperature,
	})
	if err != nil {
		logger.Warnf("failed to initialize AI generator: %v", err)
		return nil
	}
	logger.Infof("AI generator ready: model=%s", cfg.AI.Model)
	return gen
}
