package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	SearchRequestsTotal    metric.Int64Counter
	SearchErrorsTotal      metric.Int64Counter
	ResultCacheHitsTotal   metric.Int64Counter
	ResultCacheMissesTotal metric.Int64Counter
	DetailFetchesTotal     metric.Int64Counter
	FanoutDurationSeconds  metric.Float64Histogram
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("CityExplorer")
		var err error
		m := &AppMetrics{}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"place_search_requests_total",
			metric.WithDescription("Total number of nearby-search requests issued to the places provider"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create place_search_requests_total: %v", err)
		}

		m.SearchErrorsTotal, err = meter.Int64Counter(
			"place_search_errors_total",
			metric.WithDescription("Total number of failed nearby-search requests (transport or provider status)"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create place_search_errors_total: %v", err)
		}

		m.ResultCacheHitsTotal, err = meter.Int64Counter(
			"result_cache_hits_total",
			metric.WithDescription("Pipeline invocations served from the result cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create result_cache_hits_total: %v", err)
		}

		m.ResultCacheMissesTotal, err = meter.Int64Counter(
			"result_cache_misses_total",
			metric.WithDescription("Pipeline invocations that had to recompute"),
			metric.WithUnit("{miss}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create result_cache_misses_total: %v", err)
		}

		m.DetailFetchesTotal, err = meter.Int64Counter(
			"place_detail_fetches_total",
			metric.WithDescription("Detail lookups that reached the provider (cache misses)"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create place_detail_fetches_total: %v", err)
		}

		m.FanoutDurationSeconds, err = meter.Float64Histogram(
			"fanout_duration_seconds",
			metric.WithDescription("Wall-clock duration of the per-category search fan-out"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fanout_duration_seconds: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
