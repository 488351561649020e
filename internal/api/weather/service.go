package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const snapshotTTL = 10 * time.Minute

// Provider is the weather client surface the service depends on.
type Provider interface {
	Current(ctx context.Context, city string) (types.WeatherSnapshot, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service exposes current conditions for a city. Snapshots degrade to nil
// on any provider failure so callers can always render without them.
type Service interface {
	Current(ctx context.Context, city string) *types.WeatherSnapshot
	Badges(ctx context.Context, place types.PlaceCandidate, city string) []string
}

// ServiceImpl memoizes snapshots per city for a short window so a burst of
// place annotations reuses one provider call.
type ServiceImpl struct {
	logger   *slog.Logger
	provider Provider
	cache    *cache.Cache
}

func NewService(provider Provider, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		provider: provider,
		cache:    cache.New(snapshotTTL, 20*time.Minute),
	}
}

// Current returns the cached or freshly fetched snapshot for a city, or nil
// when the provider cannot serve one.
func (s *ServiceImpl) Current(ctx context.Context, city string) *types.WeatherSnapshot {
	if cached, found := s.cache.Get(city); found {
		if snapshot, ok := cached.(types.WeatherSnapshot); ok {
			return &snapshot
		}
	}

	snapshot, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.WarnContext(ctx, "Weather lookup failed, continuing without it",
			slog.String("city", city), slog.Any("error", err))
		return nil
	}

	s.cache.Set(city, snapshot, cache.DefaultExpiration)
	return &snapshot
}

// Badges annotates one ranked place with feedback badges, using the city's
// current weather when available.
func (s *ServiceImpl) Badges(ctx context.Context, place types.PlaceCandidate, city string) []string {
	var snapshot *types.WeatherSnapshot
	if city != "" {
		snapshot = s.Current(ctx, city)
	}
	return Feedback(place, snapshot)
}
