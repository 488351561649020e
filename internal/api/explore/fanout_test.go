package explore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// countingProvider records concurrency and per-category behavior without
// hitting the network.
type countingProvider struct {
	mu         sync.Mutex
	inFlight   int
	maxSeen    int
	failing    map[string]error
	perSearch  time.Duration
	candidates map[string][]types.PlaceCandidate
}

func (p *countingProvider) SearchNearby(ctx context.Context, location types.Coordinate, category string, radiusMeters int, rankBy types.RankBy) ([]types.PlaceCandidate, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.maxSeen {
		p.maxSeen = p.inFlight
	}
	p.mu.Unlock()

	if p.perSearch > 0 {
		time.Sleep(p.perSearch)
	}

	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()

	if err, ok := p.failing[category]; ok {
		return nil, err
	}
	return p.candidates[category], nil
}

func (p *countingProvider) FetchDetails(ctx context.Context, placeID string) (types.PlaceDetails, error) {
	return types.PlaceDetails{}, nil
}

func TestFanout(t *testing.T) {
	logger := slog.Default()

	t.Run("EveryCategoryGetsAnEntry", func(t *testing.T) {
		provider := &countingProvider{
			candidates: map[string][]types.PlaceCandidate{
				"park": {candidate("green", 4.2, 80, 38.73, -9.14)},
				"cafe": {candidate("espresso", 4.6, 120, 38.72, -9.13)},
			},
		}
		service := NewService(provider, Options{}, logger)

		byCategory := service.fanout(context.Background(), lisbon, []string{"park", "cafe", "museum"}, 5000, types.RankByNone)

		assert.Len(t, byCategory, 3)
		assert.Len(t, byCategory["park"], 1)
		assert.Len(t, byCategory["cafe"], 1)
		assert.Empty(t, byCategory["museum"])
		assert.NotNil(t, byCategory["museum"])
	})

	t.Run("FailedCategoryDegradesToEmpty", func(t *testing.T) {
		provider := &countingProvider{
			failing: map[string]error{"bar": errors.New("connection refused")},
			candidates: map[string][]types.PlaceCandidate{
				"park": {candidate("green", 4.2, 80, 38.73, -9.14)},
			},
		}
		service := NewService(provider, Options{}, logger)

		byCategory := service.fanout(context.Background(), lisbon, []string{"park", "bar"}, 5000, types.RankByNone)

		assert.Len(t, byCategory["park"], 1)
		assert.Empty(t, byCategory["bar"])
		assert.NotNil(t, byCategory["bar"])
	})

	t.Run("ConcurrencyIsBounded", func(t *testing.T) {
		provider := &countingProvider{perSearch: 30 * time.Millisecond}
		service := NewService(provider, Options{MaxWorkers: 3}, logger)

		categories := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		byCategory := service.fanout(context.Background(), lisbon, categories, 5000, types.RankByNone)

		assert.Len(t, byCategory, len(categories))
		assert.LessOrEqual(t, provider.maxSeen, 3)
		assert.Greater(t, provider.maxSeen, 1)
	})
}

func TestFlatten(t *testing.T) {
	byCategory := map[string][]types.PlaceCandidate{
		"cafe": {candidate("second", 4.0, 10, 38.73, -9.14)},
		"park": {candidate("first", 4.0, 10, 38.73, -9.14)},
	}

	flat := flatten([]string{"park", "cafe"}, byCategory)

	assert.Equal(t, "first", flat[0].Name)
	assert.Equal(t, "second", flat[1].Name)
}
