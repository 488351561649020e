package places

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// Geocode resolves a typed city name to a coordinate through the provider
// geocode endpoint. Pure pass-through: first result wins.
func (c *Client) Geocode(ctx context.Context, city string) (types.Coordinate, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.city", city),
	))
	defer span.End()

	params := url.Values{}
	params.Set("address", city)
	params.Set("key", c.apiKey)

	var payload geocodeResponse
	if err := c.getJSON(ctx, "/geocode/json", params, &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocode request failed")
		return types.Coordinate{}, &FetchError{Op: "geocode", Err: err}
	}
	if payload.Status != statusOK || len(payload.Results) == 0 {
		err := &FetchError{Op: "geocode", Status: payload.Status}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider could not geocode city")
		return types.Coordinate{}, err
	}

	location := payload.Results[0].Geometry.Location
	span.SetStatus(codes.Ok, "City geocoded")
	return types.Coordinate{Latitude: location.Lat, Longitude: location.Lng}, nil
}
