package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const defaultTimeout = 10 * time.Second

// currentResponse is the provider's current-conditions payload. The cod
// field is a number on success and a string like "404" on failure, so it is
// decoded loosely and compared as text.
type currentResponse struct {
	Cod  any `json:"cod"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Client talks to the weather provider's current-conditions endpoint.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Current fetches the current conditions for a city using metric units.
func (c *Client) Current(ctx context.Context, city string) (types.WeatherSnapshot, error) {
	ctx, span := otel.Tracer("WeatherClient").Start(ctx, "Current", trace.WithAttributes(
		attribute.String("weather.city", city),
	))
	defer span.End()

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build request")
		return types.WeatherSnapshot{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Weather request failed")
		return types.WeatherSnapshot{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Failures arrive with a JSON body carrying cod, so decode before
	// looking at the HTTP status.
	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode weather response")
		return types.WeatherSnapshot{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if cod := fmt.Sprint(payload.Cod); cod != "200" {
		err := fmt.Errorf("provider status %s for city %q", cod, city)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider rejected weather request")
		return types.WeatherSnapshot{}, err
	}

	snapshot := types.WeatherSnapshot{
		TempC:       payload.Main.Temp,
		FeelsLikeC:  payload.Main.FeelsLike,
		HumidityPct: payload.Main.Humidity,
	}
	if len(payload.Weather) > 0 {
		snapshot.Condition = payload.Weather[0].Main
	}

	span.SetStatus(codes.Ok, "Weather fetched")
	return snapshot, nil
}
