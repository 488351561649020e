package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const (
	defaultTimeout = 10 * time.Second
	photoMaxWidth  = 400

	// details fields requested from the provider, kept to what the UI renders
	detailFields = "name,formatted_address,website,formatted_phone_number,opening_hours,rating,reviews,photos"
)

// Client talks to the places provider's nearby-search, details and geocode
// endpoints. All methods return a *FetchError on any transport failure or
// non-success provider status; they never panic and never retry.
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

// SearchNearby issues one nearby-search request for a single category.
// The returned candidates carry the requested category tag; DistanceKm is
// left zero for the ranking engine to fill in.
func (c *Client) SearchNearby(ctx context.Context, location types.Coordinate, category string, radiusMeters int, rankBy types.RankBy) ([]types.PlaceCandidate, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "SearchNearby", trace.WithAttributes(
		attribute.String("place.category", category),
		attribute.Int("search.radius_m", radiusMeters),
	))
	defer span.End()

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Latitude, location.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", category)
	params.Set("key", c.apiKey)
	if rankBy == types.RankByProminence {
		params.Set("rankby", string(rankBy))
	}

	var payload nearbySearchResponse
	if err := c.getJSON(ctx, "/place/nearbysearch/json", params, &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Nearby search request failed")
		return nil, &FetchError{Op: "nearby_search", Err: err}
	}
	if payload.Status != statusOK && payload.Status != "ZERO_RESULTS" {
		err := &FetchError{Op: "nearby_search", Status: payload.Status}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider rejected nearby search")
		return nil, err
	}

	candidates := make([]types.PlaceCandidate, 0, len(payload.Results))
	for _, result := range payload.Results {
		candidate := types.PlaceCandidate{
			Name:        result.Name,
			Category:    category,
			Rating:      result.Rating,
			ReviewCount: result.UserRatingsTotal,
			Coordinates: types.Coordinate{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			PlaceID: result.PlaceID,
		}
		if len(result.Photos) > 0 {
			candidate.PhotoURL = c.photoURL(result.Photos[0].PhotoReference)
		}
		candidates = append(candidates, candidate)
	}

	span.SetAttributes(attribute.Int("candidates.count", len(candidates)))
	span.SetStatus(codes.Ok, "Nearby search completed")
	return candidates, nil
}

// FetchDetails fetches the detail record for one place.
func (c *Client) FetchDetails(ctx context.Context, placeID string) (types.PlaceDetails, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "FetchDetails", trace.WithAttributes(
		attribute.String("place.id", placeID),
	))
	defer span.End()

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)

	var payload detailsResponse
	if err := c.getJSON(ctx, "/place/details/json", params, &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Details request failed")
		return types.PlaceDetails{}, &FetchError{Op: "place_details", Err: err}
	}
	if payload.Status != statusOK {
		err := &FetchError{Op: "place_details", Status: payload.Status}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider rejected details request")
		return types.PlaceDetails{}, err
	}

	result := payload.Result
	details := types.PlaceDetails{
		Address: result.FormattedAddress,
		Website: result.Website,
		Phone:   result.FormattedPhoneNumber,
	}
	if result.OpeningHours != nil {
		details.OpeningHours = result.OpeningHours.WeekdayText
	}
	for i, p := range result.Photos {
		if i >= 3 {
			break
		}
		details.Photos = append(details.Photos, c.photoURL(p.PhotoReference))
	}
	for _, review := range result.Reviews {
		details.Reviews = append(details.Reviews, types.PlaceReview{
			Text:       review.Text,
			AuthorName: review.AuthorName,
		})
	}

	span.SetStatus(codes.Ok, "Details fetched")
	return details, nil
}

// photoURL builds the provider photo endpoint URL for a photo reference.
func (c *Client) photoURL(photoReference string) string {
	return fmt.Sprintf("%s/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		c.baseURL, photoMaxWidth, url.QueryEscape(photoReference), c.apiKey)
}

// getJSON performs one GET against the provider and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
