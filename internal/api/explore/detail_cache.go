package explore

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-city-explorer/app/observability/metrics"
	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// DetailFetcher is the slice of the places client the detail cache needs.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, placeID string) (types.PlaceDetails, error)
}

// DetailCache memoizes place-detail lookups by place ID for the process
// lifetime. Detail lookups are user-driven and bounded by result-list size,
// so there is no eviction. Concurrent gets for the same place ID are
// coalesced into a single provider fetch.
type DetailCache struct {
	logger  *slog.Logger
	fetcher DetailFetcher
	metrics *metrics.AppMetrics

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]types.PlaceDetails
}

func NewDetailCache(fetcher DetailFetcher, appMetrics *metrics.AppMetrics, logger *slog.Logger) *DetailCache {
	return &DetailCache{
		logger:  logger,
		fetcher: fetcher,
		metrics: appMetrics,
		entries: make(map[string]types.PlaceDetails),
	}
}

// Get returns the cached details for a place, fetching them on first use.
// A failed fetch degrades to zero-value details and is not cached, so a
// later expand can retry.
func (d *DetailCache) Get(ctx context.Context, placeID string) types.PlaceDetails {
	d.mu.RLock()
	cached, found := d.entries[placeID]
	d.mu.RUnlock()
	if found {
		return cached
	}

	fetched, err, _ := d.group.Do(placeID, func() (interface{}, error) {
		if d.metrics != nil {
			d.metrics.DetailFetchesTotal.Add(ctx, 1)
		}
		details, err := d.fetcher.FetchDetails(ctx, placeID)
		if err != nil {
			return types.PlaceDetails{}, err
		}
		d.mu.Lock()
		d.entries[placeID] = details
		d.mu.Unlock()
		return details, nil
	})
	if err != nil {
		d.logger.WarnContext(ctx, "Detail fetch failed, returning empty details",
			slog.String("place_id", placeID), slog.Any("error", err))
		return types.PlaceDetails{}
	}
	return fetched.(types.PlaceDetails)
}
