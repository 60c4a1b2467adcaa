package server

import (
	"context"
	"fmt"
	"time"

	"rentorbuy/internal/cache"
	"rentorbuy/internal/config"
	"rentorbuy/internal/database"
	"rentorbuy/internal/logger"
	"rentorbuy/internal/middleware"
	"rentorbuy/internal/services"
)

// Build wires services from configuration. The returned cleanup func
// releases every resource that was opened, in reverse order.
func Build(cfg *config.Config) (Dependencies, func(), error) {
	log := logger.Get()
	var closers []func() error

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warnw("cleanup failed", "error", err)
			}
		}
	}

	deps := Dependencies{Config: cfg}

	// Result cache
	var resultCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			_ = redisCache.Close()
			return deps, cleanup, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		closers = append(closers, redisCache.Close)
		resultCache = redisCache
		log.Infof("Using redis result cache at %s", cfg.RedisAddr)
	} else {
		memoryCache := cache.NewMemoryCache()
		memoryCache.StartPurging(cache.DefaultPurgeInterval)
		closers = append(closers, func() error {
			memoryCache.Stop()
			return nil
		})
		resultCache = memoryCache
		log.Info("Using in-memory result cache")
	}
	deps.SimulationService = services.NewSimulationService(resultCache, cfg.CacheTTL)

	// Audit trail
	if cfg.AuditEnabled {
		dbManager, err := database.NewManager(database.NewConfig(cfg))
		if err != nil {
			cleanup()
			return deps, func() {}, fmt.Errorf("failed to create database manager: %w", err)
		}
		closers = append(closers, dbManager.Close)

		if err := dbManager.RunMigrations(); err != nil {
			cleanup()
			return deps, func() {}, fmt.Errorf("failed to run database migrations: %w", err)
		}
		deps.AuditService = services.NewAuditService(dbManager.DB())
		log.Info("Audit trail enabled")
	} else {
		deps.AuditService = services.NewNopAuditService()
	}

	// Rate limiting
	if cfg.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		closers = append(closers, func() error {
			limiter.Stop()
			return nil
		})
		deps.RateLimiter = limiter
	}

	return deps, cleanup, nil
}
