package explore

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// fanout issues one nearby search per category with at most maxWorkers in
// flight and joins the results keyed by category. A failed or timed-out
// search degrades to an empty slice for its category; the mapping always
// carries an entry for every requested category. Provider order is preserved
// within each category.
func (s *ServiceImpl) fanout(ctx context.Context, location types.Coordinate, categories []string, radiusMeters int, rankBy types.RankBy) map[string][]types.PlaceCandidate {
	ctx, span := otel.Tracer("ExploreService").Start(ctx, "fanout", trace.WithAttributes(
		attribute.Int("categories.count", len(categories)),
		attribute.Int("fanout.max_workers", s.maxWorkers),
	))
	defer span.End()

	start := time.Now()
	results := make([][]types.PlaceCandidate, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			candidates, err := s.provider.SearchNearby(gctx, location, category, radiusMeters, rankBy)
			if err != nil {
				// Fail soft: one unreachable category must not block the rest.
				s.logger.WarnContext(gctx, "Nearby search failed, degrading to empty result",
					slog.String("category", category), slog.Any("error", err))
				span.RecordError(err)
				if s.metrics != nil {
					s.metrics.SearchErrorsTotal.Add(gctx, 1)
				}
				candidates = nil
			}
			if s.metrics != nil {
				s.metrics.SearchRequestsTotal.Add(gctx, 1)
			}
			results[i] = candidates
			return nil
		})
	}
	// Workers never return errors, so Wait only blocks for the join.
	_ = g.Wait()

	byCategory := make(map[string][]types.PlaceCandidate, len(categories))
	for i, category := range categories {
		if results[i] == nil {
			byCategory[category] = []types.PlaceCandidate{}
			continue
		}
		byCategory[category] = results[i]
	}

	if s.metrics != nil {
		s.metrics.FanoutDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}
	span.SetStatus(codes.Ok, "Fanout completed")
	return byCategory
}

// flatten joins per-category results in the requested category order so the
// pre-ranking candidate sequence is deterministic.
func flatten(categories []string, byCategory map[string][]types.PlaceCandidate) []types.PlaceCandidate {
	var candidates []types.PlaceCandidate
	for _, category := range categories {
		candidates = append(candidates, byCategory[category]...)
	}
	return candidates
}
