package analysis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonathan/resumatch/internal/cache"
	"github.com/jonathan/resumatch/internal/observability"
	"github.com/jonathan/resumatch/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCachedService(t *testing.T) (*Service, *miniredis.Miniredis, *observability.Metrics) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	svc := NewService(ServiceConfig{
		Cache:   cache.NewRedisWithClient(client, time.Hour, "test"),
		Logger:  zaptest.NewLogger(t),
		Metrics: metrics,
	})
	return svc, mr, metrics
}

func exampleRequest() *types.AnalyzeRequest {
	return &types.AnalyzeRequest{
		JobTitle:       "Senior Python Developer",
		JobDescription: exampleJD,
		Resume:         exampleResume,
	}
}

func TestService_Analyze_NoCache(t *testing.T) {
	svc := NewService(ServiceConfig{})

	result, err := svc.Analyze(context.Background(), exampleRequest())
	require.NoError(t, err)

	settings := types.DefaultSettings()
	settings.TitleText = "Senior Python Developer"
	direct, err := Analyze(exampleJD, exampleResume, settings, 0)
	require.NoError(t, err)
	assert.Equal(t, direct, result)
}

func TestService_Analyze_CachesResult(t *testing.T) {
	svc, mr, metrics := newCachedService(t)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, exampleRequest())
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)

	second, err := svc.Analyze(ctx, exampleRequest())
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("ok")))
}

func TestService_Analyze_SettingsChangeKey(t *testing.T) {
	svc, mr, _ := newCachedService(t)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, exampleRequest())
	require.NoError(t, err)

	req := exampleRequest()
	req.Settings = &types.AnalysisSettings{TitleWeight: 2.0, HardWeight: 3.0, SoftWeight: 2.0, UseStopwords: false}
	_, err = svc.Analyze(ctx, req)
	require.NoError(t, err)

	assert.Len(t, mr.Keys(), 2)
}

func TestService_Analyze_CorruptEntryRecomputed(t *testing.T) {
	svc, mr, metrics := newCachedService(t)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, exampleRequest())
	require.NoError(t, err)
	keys := mr.Keys()
	require.Len(t, keys, 1)
	require.NoError(t, mr.Set(keys[0], "{not json"))

	result, err := svc.Analyze(ctx, exampleRequest())
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("error")))
	assert.Positive(t, result.Score)
}

func TestService_Analyze_CacheDown(t *testing.T) {
	svc, mr, _ := newCachedService(t)
	mr.Close()

	result, err := svc.Analyze(context.Background(), exampleRequest())
	require.NoError(t, err)
	assert.Positive(t, result.Score)
}

func TestService_Analyze_InvalidInput(t *testing.T) {
	svc, mr, metrics := newCachedService(t)

	_, err := svc.Analyze(context.Background(), &types.AnalyzeRequest{JobDescription: "python", Resume: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, mr.Keys())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("invalid")))
}

func TestService_Analyze_Cancelled(t *testing.T) {
	svc := NewService(ServiceConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, exampleRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_AnalyzeBatch(t *testing.T) {
	svc := NewService(ServiceConfig{})
	req := &types.BatchRequest{
		JobDescription: exampleJD,
		Resumes: []types.NamedText{
			{Name: "weak.txt", Text: "Barista with latte art skills."},
			{Name: "empty.txt", Text: "   "},
			{Name: "strong.txt", Text: "Senior Python developer. SQL expert with proven leadership."},
			{Name: "example.txt", Text: exampleResume},
		},
	}

	resp, err := svc.AnalyzeBatch(context.Background(), req, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Results, 4)

	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"weak.txt", "empty.txt", "strong.txt", "example.txt"}, names)

	assert.Nil(t, resp.Results[1].Result)
	assert.Equal(t, MsgMissingInput, resp.Results[1].Error)

	require.NotNil(t, resp.Results[2].Result)
	require.NotNil(t, resp.Results[3].Result)
	assert.Greater(t, resp.Results[2].Result.Score, resp.Results[3].Result.Score)
	assert.Equal(t, 25, resp.Results[3].Result.Score)
}

func TestService_AnalyzeBatch_Cancelled(t *testing.T) {
	svc := NewService(ServiceConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeBatch(ctx, &types.BatchRequest{
		JobDescription: exampleJD,
		Resumes:        []types.NamedText{{Name: "a", Text: exampleResume}},
	}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
