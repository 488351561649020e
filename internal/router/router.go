package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-city-explorer/internal/container"
)

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(c *container.Container) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/explore", func(r chi.Router) {
			r.Get("/mood", c.ExploreHandler.GetMoodPlaces)
			r.Get("/popular", c.ExploreHandler.GetPopularPlaces)
		})

		r.Get("/places/{placeID}", c.ExploreHandler.GetPlaceDetails)
		r.Get("/moods", c.ExploreHandler.ListMoods)

		r.Get("/weather", c.WeatherHandler.GetCurrent)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", c.FavoritesHandler.ListFavorites)
			r.Post("/", c.FavoritesHandler.AddFavorite)
			r.Delete("/{placeID}", c.FavoritesHandler.RemoveFavorite)
		})
	})

	return r
}
