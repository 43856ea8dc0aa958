package fetch

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jonathan/resumatch/internal/cache"
	"go.uber.org/zap"
)

const pageNamespace = "page"

// CachedFetcher wraps a Fetcher with a cache of extracted postings keyed by URL.
// Cache failures are logged and never fail the fetch.
type CachedFetcher struct {
	next   Fetcher
	cache  cache.Cache
	logger *zap.Logger
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// NewCachedFetcher creates a cached fetcher. A nil store disables caching.
func NewCachedFetcher(next Fetcher, store cache.Cache, logger *zap.Logger) *CachedFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{next: next, cache: store, logger: logger}
}

// Fetch implements Fetcher.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	res, err := f.FetchCached(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

// FetchCached returns the cached posting if present, otherwise fetches and stores it.
func (f *CachedFetcher) FetchCached(ctx context.Context, urlStr string) (*CachedResult, error) {
	key, err := cache.Key(pageNamespace, urlStr)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		data, err := f.cache.Get(ctx, key)
		switch {
		case err == nil:
			var result Result
			if jsonErr := json.Unmarshal(data, &result); jsonErr == nil {
				return &CachedResult{Result: &result, FromCache: true}, nil
			}
			f.logger.Warn("discarding corrupt cached page", zap.String("url", urlStr))
		case !errors.Is(err, cache.ErrMiss):
			f.logger.Warn("page cache lookup failed", zap.String("url", urlStr), zap.Error(err))
		}
	}

	result, err := f.next.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		// raw HTML is not needed once the text is extracted
		stored := *result
		stored.HTML = ""
		if data, err := json.Marshal(&stored); err == nil {
			if err := f.cache.Set(ctx, key, data); err != nil {
				f.logger.Warn("page cache store failed", zap.String("url", urlStr), zap.Error(err))
			}
		}
	}

	return &CachedResult{Result: result}, nil
}

// Invalidate removes a cached posting, forcing a re-fetch on next request.
func (f *CachedFetcher) Invalidate(ctx context.Context, urlStr string) error {
	if f.cache == nil {
		return nil
	}
	key, err := cache.Key(pageNamespace, urlStr)
	if err != nil {
		return err
	}
	return f.cache.Delete(ctx, key)
}
