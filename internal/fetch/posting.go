package fetch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrNoContent is returned when a page has no extractable text.
var ErrNoContent = errors.New("no text content found")

// Fetcher retrieves a job posting and returns its extracted text.
type Fetcher interface {
	Fetch(ctx context.Context, urlStr string) (*Result, error)
}

// renderFunc matches WithBrowser so tests can substitute the browser.
type renderFunc func(ctx context.Context, urlStr string, opts *Options) (string, error)

// PostingFetcher downloads a job posting over HTTP and extracts the description
// using platform-aware selectors. When UseBrowser is set and the extracted text
// looks like an unrendered client-side app, the page is rendered in headless Chrome.
type PostingFetcher struct {
	Options    *Options
	UseBrowser bool
	Logger     *zap.Logger

	render renderFunc
}

// NewPostingFetcher creates a PostingFetcher with default options when opts is nil.
func NewPostingFetcher(opts *Options, useBrowser bool, logger *zap.Logger) *PostingFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostingFetcher{
		Options:    opts,
		UseBrowser: useBrowser,
		Logger:     logger,
		render: func(ctx context.Context, urlStr string, o *Options) (string, error) {
			return WithBrowser(ctx, urlStr, o.Timeout, logger)
		},
	}
}

// Fetch implements Fetcher.
func (f *PostingFetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	result, err := URL(ctx, urlStr, f.Options)
	if err != nil {
		return result, err
	}

	if err := f.extract(result); err != nil {
		return nil, err
	}
	f.Logger.Debug("fetched posting",
		zap.String("url", urlStr),
		zap.String("platform", string(result.Platform)),
		zap.Int("chars", len(result.Text)),
	)

	if f.UseBrowser && f.render != nil && ShouldUseBrowser(result.Text) {
		f.Logger.Info("posting looks client-rendered, retrying in browser",
			zap.String("url", urlStr), zap.Int("chars", len(result.Text)))
		html, err := f.render(ctx, urlStr, f.Options)
		if err != nil {
			f.Logger.Warn("browser rendering failed, keeping HTTP result", zap.Error(err))
		} else {
			rendered := &Result{
				URL:         result.URL,
				HTML:        html,
				Platform:    result.Platform,
				ContentType: result.ContentType,
				StatusCode:  result.StatusCode,
				Rendered:    true,
			}
			if err := f.extract(rendered); err == nil && len(rendered.Text) > len(result.Text) {
				result = rendered
			}
		}
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, &Error{URL: urlStr, Message: "extraction failed", Cause: ErrNoContent}
	}
	return result, nil
}

func (f *PostingFetcher) extract(result *Result) error {
	text, err := ExtractMainText(result.HTML,
		PlatformContentSelectors(result.Platform),
		PlatformNoiseSelectors(result.Platform)...,
	)
	if err != nil {
		return &Error{URL: result.URL, Message: "failed to extract text", Cause: err}
	}
	result.Text = text
	result.Title = ExtractTitle(result.HTML)
	return nil
}

