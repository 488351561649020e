package favorites

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-city-explorer/internal/api"
	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const sessionCookieName = "explorer_session"

type HandlerImpl struct {
	favoritesService Service
	logger           *slog.Logger
}

func NewHandlerImpl(favoritesService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{favoritesService: favoritesService, logger: logger}
}

// session returns the caller's session ID, minting a new cookie on first use.
func (h *HandlerImpl) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// ListFavorites returns the session's saved places.
func (h *HandlerImpl) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "ListFavorites", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites"),
	))
	defer span.End()

	sessionID := h.session(w, r)
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"favorites": h.favoritesService.List(ctx, sessionID),
	})
}

// AddFavorite saves one place to the session's list.
func (h *HandlerImpl) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "AddFavorite", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites"),
	))
	defer span.End()

	var place types.PlaceCandidate
	if err := api.DecodeJSONBody(w, r, &place); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if place.PlaceID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "place_id is required")
		return
	}

	sessionID := h.session(w, r)
	if err := h.favoritesService.Add(ctx, sessionID, place); err != nil {
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusConflict, err.Error())
		return
	}

	h.logger.InfoContext(ctx, "Favorite saved", slog.String("place_id", place.PlaceID))
	api.WriteJSONResponse(w, r, http.StatusCreated, map[string]interface{}{
		"success": true,
	})
}

// RemoveFavorite deletes one place from the session's list.
func (h *HandlerImpl) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FavoritesHandler").Start(r.Context(), "RemoveFavorite", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/favorites/{placeID}"),
	))
	defer span.End()

	placeID := chi.URLParam(r, "placeID")
	if placeID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "place ID is required")
		return
	}

	sessionID := h.session(w, r)
	if err := h.favoritesService.Remove(ctx, sessionID, placeID); err != nil {
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
