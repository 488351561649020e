package explore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/app/observability/metrics"
	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const (
	defaultMaxWorkers = 5
	defaultResultTTL  = time.Hour
)

// PlacesAPI is the provider surface the discovery pipeline depends on.
type PlacesAPI interface {
	SearchNearby(ctx context.Context, location types.Coordinate, category string, radiusMeters int, rankBy types.RankBy) ([]types.PlaceCandidate, error)
	FetchDetails(ctx context.Context, placeID string) (types.PlaceDetails, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service is the place-discovery pipeline exposed to the presentation layer.
type Service interface {
	GetRankedMoodPlaces(ctx context.Context, location types.Coordinate, mood string, radiusMeters int, minRating float64) ([]types.PlaceCandidate, error)
	GetRankedPopularPlaces(ctx context.Context, location types.Coordinate, radiusMeters int) ([]types.PlaceCandidate, error)
	GetDetails(ctx context.Context, placeID string) types.PlaceDetails
}

// Options tunes the pipeline; zero values fall back to the defaults.
type Options struct {
	MaxWorkers int
	ResultTTL  time.Duration
	Metrics    *metrics.AppMetrics
}

// ServiceImpl aggregates per-category searches, ranks the candidates and
// memoizes whole pipeline invocations.
type ServiceImpl struct {
	logger      *slog.Logger
	provider    PlacesAPI
	resultCache *cache.Cache
	detailCache *DetailCache
	metrics     *metrics.AppMetrics
	maxWorkers  int
	resultTTL   time.Duration
}

// NewService creates the discovery pipeline service.
func NewService(provider PlacesAPI, opts Options, logger *slog.Logger) *ServiceImpl {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}
	if opts.ResultTTL <= 0 {
		opts.ResultTTL = defaultResultTTL
	}
	return &ServiceImpl{
		logger:      logger,
		provider:    provider,
		resultCache: cache.New(opts.ResultTTL, 10*time.Minute),
		detailCache: NewDetailCache(provider, opts.Metrics, logger),
		metrics:     opts.Metrics,
		maxWorkers:  opts.MaxWorkers,
		resultTTL:   opts.ResultTTL,
	}
}

// GetRankedMoodPlaces runs the mood pipeline: fan out one search per mood
// category, stamp distances, filter by minRating, rank by rating then
// distance and truncate. Whole invocations are cached for the freshness
// window keyed by every filter input.
func (s *ServiceImpl) GetRankedMoodPlaces(ctx context.Context, location types.Coordinate, mood string, radiusMeters int, minRating float64) ([]types.PlaceCandidate, error) {
	ctx, span := otel.Tracer("ExploreService").Start(ctx, "GetRankedMoodPlaces", trace.WithAttributes(
		attribute.String("mood", mood),
		attribute.Int("search.radius_m", radiusMeters),
		attribute.Float64("min_rating", minRating),
	))
	defer span.End()

	categories, ok := types.MoodCategories(mood)
	if !ok {
		err := fmt.Errorf("unknown mood %q", mood)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown mood")
		return nil, err
	}

	cacheKey := moodCacheKey(location, categories, radiusMeters, minRating)
	span.SetAttributes(attribute.String("cache.key", cacheKey))

	if cached, found := s.resultCache.Get(cacheKey); found {
		if places, ok := cached.([]types.PlaceCandidate); ok {
			if s.metrics != nil {
				s.metrics.ResultCacheHitsTotal.Add(ctx, 1)
			}
			span.AddEvent("Cache hit")
			span.SetStatus(codes.Ok, "Served from cache")
			return places, nil
		}
	}
	if s.metrics != nil {
		s.metrics.ResultCacheMissesTotal.Add(ctx, 1)
	}

	byCategory := s.fanout(ctx, location, categories, radiusMeters, types.RankByNone)
	ranked := rankMoodResults(location, flatten(categories, byCategory), minRating)

	s.resultCache.Set(cacheKey, ranked, s.resultTTL)
	s.logger.InfoContext(ctx, "Mood places ranked",
		slog.String("mood", mood),
		slog.Int("categories", len(categories)),
		slog.Int("results", len(ranked)))
	span.SetAttributes(attribute.Int("results.count", len(ranked)))
	span.SetStatus(codes.Ok, "Mood places ranked")
	return ranked, nil
}

// GetRankedPopularPlaces runs the popular pipeline over the fixed category
// set with provider-side prominence ranking, keeping only well-reviewed
// places, ordered by rating then review count.
func (s *ServiceImpl) GetRankedPopularPlaces(ctx context.Context, location types.Coordinate, radiusMeters int) ([]types.PlaceCandidate, error) {
	ctx, span := otel.Tracer("ExploreService").Start(ctx, "GetRankedPopularPlaces", trace.WithAttributes(
		attribute.Int("search.radius_m", radiusMeters),
	))
	defer span.End()

	cacheKey := popularCacheKey(location, radiusMeters)
	span.SetAttributes(attribute.String("cache.key", cacheKey))

	if cached, found := s.resultCache.Get(cacheKey); found {
		if places, ok := cached.([]types.PlaceCandidate); ok {
			if s.metrics != nil {
				s.metrics.ResultCacheHitsTotal.Add(ctx, 1)
			}
			span.AddEvent("Cache hit")
			span.SetStatus(codes.Ok, "Served from cache")
			return places, nil
		}
	}
	if s.metrics != nil {
		s.metrics.ResultCacheMissesTotal.Add(ctx, 1)
	}

	byCategory := s.fanout(ctx, location, types.PopularCategories, radiusMeters, types.RankByProminence)
	ranked := rankPopularResults(location, flatten(types.PopularCategories, byCategory))

	s.resultCache.Set(cacheKey, ranked, s.resultTTL)
	s.logger.InfoContext(ctx, "Popular places ranked", slog.Int("results", len(ranked)))
	span.SetAttributes(attribute.Int("results.count", len(ranked)))
	span.SetStatus(codes.Ok, "Popular places ranked")
	return ranked, nil
}

// GetDetails returns detail fields for one place via the detail cache;
// failures degrade to empty details rather than an error.
func (s *ServiceImpl) GetDetails(ctx context.Context, placeID string) types.PlaceDetails {
	ctx, span := otel.Tracer("ExploreService").Start(ctx, "GetDetails", trace.WithAttributes(
		attribute.String("place.id", placeID),
	))
	defer span.End()

	details := s.detailCache.Get(ctx, placeID)
	span.SetStatus(codes.Ok, "Details served")
	return details
}

// Cache keys incorporate every filter input so distinct combinations never
// collide. Locations are used exactly as passed.

func moodCacheKey(location types.Coordinate, categories []string, radiusMeters int, minRating float64) string {
	return fmt.Sprintf("explore_mood:%f:%f:%d:%.2f:%s",
		location.Latitude, location.Longitude, radiusMeters, minRating, strings.Join(categories, ","))
}

func popularCacheKey(location types.Coordinate, radiusMeters int) string {
	return fmt.Sprintf("explore_popular:%f:%f:%d", location.Latitude, location.Longitude, radiusMeters)
}
