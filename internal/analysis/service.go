package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resumatch/internal/cache"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/jonathan/resumatch/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchConcurrency bounds parallel analyses in a batch when none is given.
	DefaultBatchConcurrency = 4
	cacheNamespace          = "analysis"
)

// ServiceConfig holds the optional collaborators of a Service.
type ServiceConfig struct {
	Cache   cache.Cache
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Service runs analyses with result caching, logging and metrics around the pure Analyze.
type Service struct {
	cache   cache.Cache
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// NewService creates a Service. Every field of cfg may be left nil.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cache:   cfg.Cache,
		logger:  logger,
		metrics: cfg.Metrics,
		now:     time.Now,
	}
}

// cacheKeyInput is the canonical identity of an analysis.
type cacheKeyInput struct {
	JobDescription string                 `json:"jd"`
	Resume         string                 `json:"resume"`
	Settings       types.AnalysisSettings `json:"settings"`
	TopK           int                    `json:"top_k"`
}

// Analyze runs a single analysis. Cache failures are logged and never fail the call.
func (s *Service) Analyze(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := req.EffectiveSettings()
	topK := req.TopK
	if topK <= 0 {
		topK = types.DefaultTopK
	}

	key := s.cacheKey(req, settings, topK)
	if cached := s.lookup(ctx, key); cached != nil {
		return cached, nil
	}

	start := s.now()
	result, err := Analyze(req.JobDescription, req.Resume, settings, topK)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.observe("invalid", elapsed, nil)
		return nil, err
	}
	s.observe("ok", elapsed, result)

	s.logger.Debug("analysis complete",
		zap.Int("score", result.Score),
		zap.Int("missing", len(result.MissingKeywords)),
		zap.Duration("duration", elapsed),
	)

	s.store(ctx, key, result)
	return result, nil
}

// AnalyzeBatch compares one job description with every résumé of req, running at most
// concurrency analyses at once. Résumés rejected as invalid input carry their message in
// BatchResult.Error; other failures abort the batch. Results keep request order.
func (s *Service) AnalyzeBatch(ctx context.Context, req *types.BatchRequest, concurrency int) (*types.BatchResponse, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]types.BatchResult, len(req.Resumes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range req.Resumes {
		g.Go(func() error {
			results[i].Name = doc.Name
			result, err := s.Analyze(gctx, &types.AnalyzeRequest{
				JobTitle:       req.JobTitle,
				JobDescription: req.JobDescription,
				Resume:         doc.Text,
				Settings:       req.Settings,
				TopK:           req.TopK,
			})
			if errors.Is(err, ErrInvalidInput) {
				results[i].Error = err.Error()
				return nil
			}
			if err != nil {
				return err
			}
			results[i].Result = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("batch analysis complete",
		zap.Int("resumes", len(req.Resumes)),
		zap.Int("concurrency", concurrency),
	)

	return &types.BatchResponse{
		ID:      uuid.NewString(),
		Results: results,
	}, nil
}

func (s *Service) cacheKey(req *types.AnalyzeRequest, settings types.AnalysisSettings, topK int) string {
	if s.cache == nil {
		return ""
	}
	key, err := cache.Key(cacheNamespace, cacheKeyInput{
		JobDescription: req.JobDescription,
		Resume:         req.Resume,
		Settings:       settings,
		TopK:           topK,
	})
	if err != nil {
		s.logger.Warn("failed to build cache key", zap.Error(err))
		return ""
	}
	return key
}

func (s *Service) lookup(ctx context.Context, key string) *types.AnalysisResult {
	if key == "" {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		s.countLookup("miss")
		return nil
	}
	if err != nil {
		s.countLookup("error")
		s.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.countLookup("error")
		s.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}

	s.countLookup("hit")
	s.logger.Debug("cache hit", zap.String("key", key))
	return &result
}

func (s *Service) store(ctx context.Context, key string, result *types.AnalysisResult) {
	if key == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode result for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) countLookup(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}

func (s *Service) observe(outcome string, elapsed time.Duration, result *types.AnalysisResult) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	s.metrics.AnalysisDuration.Observe(elapsed.Seconds())
	if result != nil {
		s.metrics.MatchScore.Observe(float64(result.Score))
	}
}
