package main

import (
	"context"
	"io"
	"time"

	"github.com/jonathan/resumatch/internal/cache"
	"github.com/jonathan/resumatch/internal/config"
	"github.com/jonathan/resumatch/internal/ingestion"
	"go.uber.org/zap"
)

// openCache connects to redis when an address is configured. A failed ping
// disables caching rather than failing the command.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.Address == "" {
		return nil, func() {}
	}

	rc := cache.NewRedis(cache.RedisConfig{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.String("address", cfg.Redis.Address), zap.Error(err))
		_ = rc.Close()
		return nil, func() {}
	}

	logger.Debug("redis cache enabled", zap.String("address", cfg.Redis.Address))
	return rc, func() { _ = rc.Close() }
}

// loadDocument reads a cleaned document from a file, or from stdin for "-".
func loadDocument(path string, stdin io.Reader) (string, *ingestion.Metadata, error) {
	if path == config.StdinPath {
		return ingestion.IngestFromReader(stdin)
	}
	return ingestion.IngestFromFile(path)
}

// loadJob reads the job description from cfg.JobURL when set, otherwise from cfg.Job.
func loadJob(ctx context.Context, cfg *config.Config, store cache.Cache, stdin io.Reader) (string, *ingestion.Metadata, error) {
	if cfg.JobURL != "" {
		return ingestion.IngestFromURL(ctx, cfg.JobURL, ingestion.URLOptions{
			UseBrowser: cfg.UseBrowser,
			Timeout:    cfg.Fetch.Timeout,
			Cache:      store,
			Logger:     logger,
		})
	}
	return loadDocument(cfg.Job, stdin)
}
