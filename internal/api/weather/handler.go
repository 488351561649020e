package weather

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/api"
)

type HandlerImpl struct {
	weatherService Service
	logger         *slog.Logger
}

func NewHandlerImpl(weatherService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{weatherService: weatherService, logger: logger}
}

// GetCurrent returns the current conditions and clothing advice for a city.
func (h *HandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetCurrent", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/weather"),
	))
	defer span.End()

	city := r.URL.Query().Get("city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city query parameter is required")
		return
	}

	snapshot := h.weatherService.Current(ctx, city)
	if snapshot == nil {
		h.logger.DebugContext(ctx, "No weather available", slog.String("city", city))
		api.ErrorResponse(w, r, http.StatusNotFound, "weather is not available for this city")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"city":            city,
		"weather":         snapshot,
		"clothing_advice": ClothingAdvice(snapshot.TempC),
	})
}
