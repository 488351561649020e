package explore

import (
	"sort"

	"github.com/FACorreiaa/go-city-explorer/internal/api/geo"
	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const (
	moodResultCap     = 15
	popularResultCap  = 10
	minPopularReviews = 100
)

// withDistances stamps DistanceKm on every candidate, measured from the
// querying coordinate. Provider-supplied distances are never trusted.
func withDistances(origin types.Coordinate, candidates []types.PlaceCandidate) []types.PlaceCandidate {
	annotated := make([]types.PlaceCandidate, len(candidates))
	for i, candidate := range candidates {
		candidate.DistanceKm = geo.DistanceKm(origin, candidate.Coordinates)
		annotated[i] = candidate
	}
	return annotated
}

// rankMoodResults drops candidates below minRating, orders the rest by
// rating (desc) then distance (asc), and truncates to the mood result cap.
// The sort is stable so true ties keep a deterministic order.
func rankMoodResults(origin types.Coordinate, candidates []types.PlaceCandidate, minRating float64) []types.PlaceCandidate {
	ranked := make([]types.PlaceCandidate, 0, len(candidates))
	for _, candidate := range withDistances(origin, candidates) {
		if candidate.Rating < minRating {
			continue
		}
		ranked = append(ranked, candidate)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > moodResultCap {
		ranked = ranked[:moodResultCap]
	}
	return ranked
}

// rankPopularResults drops candidates with fewer than minPopularReviews
// reviews, orders by rating (desc) then review count (desc), and truncates
// to the popular result cap.
func rankPopularResults(origin types.Coordinate, candidates []types.PlaceCandidate) []types.PlaceCandidate {
	ranked := make([]types.PlaceCandidate, 0, len(candidates))
	for _, candidate := range withDistances(origin, candidates) {
		if candidate.ReviewCount < minPopularReviews {
			continue
		}
		ranked = append(ranked, candidate)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ReviewCount > ranked[j].ReviewCount
	})

	if len(ranked) > popularResultCap {
		ranked = ranked[:popularResultCap]
	}
	return ranked
}
