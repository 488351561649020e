package container

import (
	"log/slog"

	"github.com/FACorreiaa/go-city-explorer/app/observability/metrics"
	"github.com/FACorreiaa/go-city-explorer/config"
	"github.com/FACorreiaa/go-city-explorer/internal/api/explore"
	"github.com/FACorreiaa/go-city-explorer/internal/api/favorites"
	"github.com/FACorreiaa/go-city-explorer/internal/api/places"
	"github.com/FACorreiaa/go-city-explorer/internal/api/weather"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	ExploreHandler   *explore.HandlerImpl
	WeatherHandler   *weather.HandlerImpl
	FavoritesHandler *favorites.HandlerImpl
}

// NewContainer initializes and returns a new dependency container
func NewContainer(cfg *config.Config, appMetrics *metrics.AppMetrics, logger *slog.Logger) *Container {
	// Provider clients
	placesClient := places.NewClient(
		cfg.Providers.Places.BaseURL,
		cfg.Providers.Places.APIKey,
		cfg.Providers.Places.Timeout,
		logger,
	)
	weatherClient := weather.NewClient(
		cfg.Providers.Weather.BaseURL,
		cfg.Providers.Weather.APIKey,
		cfg.Providers.Weather.Timeout,
		logger,
	)

	// Services
	exploreService := explore.NewService(placesClient, explore.Options{
		MaxWorkers: cfg.Discovery.MaxWorkers,
		ResultTTL:  cfg.Discovery.ResultTTL,
		Metrics:    appMetrics,
	}, logger)
	weatherService := weather.NewService(weatherClient, logger)
	favoritesService := favorites.NewService(logger)

	// Handlers
	exploreHandler := explore.NewHandlerImpl(
		exploreService,
		placesClient,
		weatherService,
		cfg.Discovery.DefaultRadiusMeters,
		cfg.Discovery.DefaultMinRating,
		logger,
	)
	weatherHandler := weather.NewHandlerImpl(weatherService, logger)
	favoritesHandler := favorites.NewHandlerImpl(favoritesService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		ExploreHandler:   exploreHandler,
		WeatherHandler:   weatherHandler,
		FavoritesHandler: favoritesHandler,
	}
}
