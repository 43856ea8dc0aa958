package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resumatch/internal/cache"
	"github.com/jonathan/resumatch/internal/fetch"
	"go.uber.org/zap"
)

var (
	// ErrInvalidURL is returned when URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// URLOptions configures IngestFromURL.
type URLOptions struct {
	// UseBrowser renders client-side job boards in headless Chrome when the
	// plain HTTP response has too little text.
	UseBrowser bool
	Timeout    time.Duration
	// Cache stores extracted postings; nil disables caching.
	Cache  cache.Cache
	Logger *zap.Logger
	// Fetcher overrides the default posting fetcher.
	Fetcher fetch.Fetcher
}

// IngestFromURL fetches a job posting, extracts its description with
// platform-specific selectors, cleans it, and returns the text with metadata.
func IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	if err := fetch.ValidateURL(urlStr); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetchOpts := fetch.DefaultOptions()
		if opts.Timeout > 0 {
			fetchOpts.Timeout = opts.Timeout
		}
		fetcher = fetch.NewPostingFetcher(fetchOpts, opts.UseBrowser, logger)
	}

	var (
		result    *fetch.Result
		fromCache bool
		err       error
	)
	if opts.Cache != nil {
		var cached *fetch.CachedResult
		cached, err = fetch.NewCachedFetcher(fetcher, opts.Cache, logger).FetchCached(ctx, urlStr)
		if cached != nil {
			result, fromCache = cached.Result, cached.FromCache
		}
	} else {
		result, err = fetcher.Fetch(ctx, urlStr)
	}
	if err != nil {
		if errors.Is(err, fetch.ErrNoContent) {
			return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	cleanedText := CleanText(result.Text)
	metadata := NewMetadata(cleanedText, SourceURL)
	metadata.URL = urlStr
	metadata.Title = result.Title
	metadata.Platform = string(result.Platform)
	metadata.Rendered = result.Rendered
	metadata.FromCache = fromCache

	logger.Info("ingested job posting",
		zap.String("url", urlStr),
		zap.String("platform", metadata.Platform),
		zap.Int("chars", metadata.Chars),
		zap.Bool("from_cache", fromCache),
	)
	return cleanedText, metadata, nil
}
