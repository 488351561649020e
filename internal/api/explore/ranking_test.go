package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

var lisbon = types.Coordinate{Latitude: 38.7223, Longitude: -9.1393}

func candidate(name string, rating float64, reviews int, lat, lon float64) types.PlaceCandidate {
	return types.PlaceCandidate{
		Name:        name,
		Rating:      rating,
		ReviewCount: reviews,
		Coordinates: types.Coordinate{Latitude: lat, Longitude: lon},
		PlaceID:     "id-" + name,
	}
}

func TestRankMoodResults(t *testing.T) {
	t.Run("FiltersBelowMinRating", func(t *testing.T) {
		candidates := []types.PlaceCandidate{
			candidate("keep", 4.5, 50, 38.73, -9.14),
			candidate("drop", 3.9, 500, 38.73, -9.14),
		}

		ranked := rankMoodResults(lisbon, candidates, 4.0)

		assert.Len(t, ranked, 1)
		assert.Equal(t, "keep", ranked[0].Name)
	})

	t.Run("BoundaryRatingIsKept", func(t *testing.T) {
		candidates := []types.PlaceCandidate{candidate("exact", 4.0, 10, 38.73, -9.14)}

		ranked := rankMoodResults(lisbon, candidates, 4.0)

		assert.Len(t, ranked, 1)
	})

	t.Run("OrdersByRatingThenDistance", func(t *testing.T) {
		// far is closer in rating but further away than near
		candidates := []types.PlaceCandidate{
			candidate("far", 4.5, 10, 38.80, -9.14),
			candidate("best", 4.9, 10, 38.80, -9.30),
			candidate("near", 4.5, 10, 38.7224, -9.1394),
		}

		ranked := rankMoodResults(lisbon, candidates, 4.0)

		assert.Equal(t, []string{"best", "near", "far"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	})

	t.Run("StampsDistanceFromOrigin", func(t *testing.T) {
		candidates := []types.PlaceCandidate{candidate("same-point", 4.5, 10, lisbon.Latitude, lisbon.Longitude)}

		ranked := rankMoodResults(lisbon, candidates, 4.0)

		assert.InDelta(t, 0.0, ranked[0].DistanceKm, 1e-9)
	})

	t.Run("CapsAtFifteen", func(t *testing.T) {
		var candidates []types.PlaceCandidate
		for i := 0; i < 40; i++ {
			candidates = append(candidates, candidate("p", 4.0+float64(i%10)/10, 10, 38.73, -9.14))
		}

		ranked := rankMoodResults(lisbon, candidates, 4.0)

		assert.Len(t, ranked, moodResultCap)
	})

	t.Run("EmptyInputYieldsEmptyOutput", func(t *testing.T) {
		ranked := rankMoodResults(lisbon, nil, 4.0)

		assert.Empty(t, ranked)
	})
}

func TestRankPopularResults(t *testing.T) {
	t.Run("FiltersThinlyReviewedPlaces", func(t *testing.T) {
		candidates := []types.PlaceCandidate{
			candidate("established", 4.2, 250, 38.73, -9.14),
			candidate("new-spot", 5.0, 99, 38.73, -9.14),
			candidate("boundary", 4.0, minPopularReviews, 38.73, -9.14),
		}

		ranked := rankPopularResults(lisbon, candidates)

		assert.Len(t, ranked, 2)
		for _, place := range ranked {
			assert.GreaterOrEqual(t, place.ReviewCount, minPopularReviews)
		}
	})

	t.Run("OrdersByRatingThenReviewCount", func(t *testing.T) {
		candidates := []types.PlaceCandidate{
			candidate("fewer-reviews", 4.5, 300, 38.73, -9.14),
			candidate("top", 4.8, 150, 38.73, -9.14),
			candidate("more-reviews", 4.5, 900, 38.73, -9.14),
		}

		ranked := rankPopularResults(lisbon, candidates)

		assert.Equal(t, []string{"top", "more-reviews", "fewer-reviews"},
			[]string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	})

	t.Run("CapsAtTen", func(t *testing.T) {
		var candidates []types.PlaceCandidate
		for i := 0; i < 30; i++ {
			candidates = append(candidates, candidate("p", 4.5, 200+i, 38.73, -9.14))
		}

		ranked := rankPopularResults(lisbon, candidates)

		assert.Len(t, ranked, popularResultCap)
	})

	t.Run("DuplicatesAcrossCategoriesSurvive", func(t *testing.T) {
		// The same venue discovered under two categories stays listed twice.
		shared := candidate("plaza-cafe", 4.6, 400, 38.73, -9.14)
		second := shared
		second.Category = "tourist_attraction"

		ranked := rankPopularResults(lisbon, []types.PlaceCandidate{shared, second})

		assert.Len(t, ranked, 2)
		assert.Equal(t, ranked[0].PlaceID, ranked[1].PlaceID)
	})
}
