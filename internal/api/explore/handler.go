package explore

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/api"
	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// Geocoder resolves a typed city name when the caller has no coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (types.Coordinate, error)
}

// Annotator builds short feedback badges for a ranked place. May be nil.
type Annotator interface {
	Badges(ctx context.Context, place types.PlaceCandidate, city string) []string
}

type HandlerImpl struct {
	exploreService      Service
	geocoder            Geocoder
	annotator           Annotator
	logger              *slog.Logger
	defaultRadiusMeters int
	defaultMinRating    float64
}

func NewHandlerImpl(exploreService Service, geocoder Geocoder, annotator Annotator, defaultRadiusMeters int, defaultMinRating float64, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		exploreService:      exploreService,
		geocoder:            geocoder,
		annotator:           annotator,
		logger:              logger,
		defaultRadiusMeters: defaultRadiusMeters,
		defaultMinRating:    defaultMinRating,
	}
}

// rankedPlace is PlaceCandidate with short feedback badges for the UI.
type rankedPlace struct {
	types.PlaceCandidate
	Badges []string `json:"badges,omitempty"`
}

func (h *HandlerImpl) annotate(ctx context.Context, places []types.PlaceCandidate, city string) []rankedPlace {
	annotated := make([]rankedPlace, len(places))
	for i, place := range places {
		annotated[i] = rankedPlace{PlaceCandidate: place}
		if h.annotator != nil {
			annotated[i].Badges = h.annotator.Badges(ctx, place, city)
		}
	}
	return annotated
}

// GetMoodPlaces returns the ranked recommendations for a mood.
func (h *HandlerImpl) GetMoodPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExploreHandler").Start(r.Context(), "GetMoodPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/explore/mood"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetMoodPlaces"))

	mood := r.URL.Query().Get("mood")
	if mood == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "mood query parameter is required")
		return
	}

	location, ok := h.resolveLocation(w, r, l)
	if !ok {
		return
	}

	radiusMeters := h.radiusMeters(r)
	minRating := h.minRating(r)

	places, err := h.exploreService.GetRankedMoodPlaces(ctx, location, mood, radiusMeters, minRating)
	if err != nil {
		l.ErrorContext(ctx, "Failed to rank mood places", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"mood":   mood,
		"places": h.annotate(ctx, places, r.URL.Query().Get("city")),
	})
}

// GetPopularPlaces returns the must-visit places around the caller.
func (h *HandlerImpl) GetPopularPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExploreHandler").Start(r.Context(), "GetPopularPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/explore/popular"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPopularPlaces"))

	location, ok := h.resolveLocation(w, r, l)
	if !ok {
		return
	}

	places, err := h.exploreService.GetRankedPopularPlaces(ctx, location, h.radiusMeters(r))
	if err != nil {
		l.ErrorContext(ctx, "Failed to rank popular places", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load popular places")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"places": h.annotate(ctx, places, r.URL.Query().Get("city")),
	})
}

// GetPlaceDetails returns the lazily fetched detail record for one place.
func (h *HandlerImpl) GetPlaceDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExploreHandler").Start(r.Context(), "GetPlaceDetails", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/{placeID}"),
	))
	defer span.End()

	placeID := chi.URLParam(r, "placeID")
	if placeID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "place ID is required")
		return
	}

	details := h.exploreService.GetDetails(ctx, placeID)
	api.WriteJSONResponse(w, r, http.StatusOK, details)
}

// ListMoods exposes the mood table so the UI can render the selector.
func (h *HandlerImpl) ListMoods(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"moods": types.MoodProfiles,
	})
}

// resolveLocation reads lat/lon query parameters, falling back to geocoding
// a typed city name. Writes the error response itself on failure.
func (h *HandlerImpl) resolveLocation(w http.ResponseWriter, r *http.Request, l *slog.Logger) (types.Coordinate, bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			api.ErrorResponse(w, r, http.StatusBadRequest, "invalid lat/lon")
			return types.Coordinate{}, false
		}
		return types.Coordinate{Latitude: lat, Longitude: lon}, true
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "either lat/lon or city is required")
		return types.Coordinate{}, false
	}
	location, err := h.geocoder.Geocode(r.Context(), city)
	if err != nil {
		l.WarnContext(r.Context(), "Failed to geocode city", slog.String("city", city), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "could not resolve city to a location")
		return types.Coordinate{}, false
	}
	return location, true
}

func (h *HandlerImpl) radiusMeters(r *http.Request) int {
	if radiusKm, err := strconv.ParseFloat(r.URL.Query().Get("radius_km"), 64); err == nil && radiusKm > 0 {
		return int(radiusKm * 1000)
	}
	return h.defaultRadiusMeters
}

func (h *HandlerImpl) minRating(r *http.Request) float64 {
	if minRating, err := strconv.ParseFloat(r.URL.Query().Get("min_rating"), 64); err == nil && minRating >= 0 {
		return minRating
	}
	return h.defaultMinRating
}
