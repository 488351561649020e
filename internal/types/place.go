package types

// Coordinate is a WGS84 point. Latitude in [-90,90], longitude in [-180,180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceCandidate is one place returned by a category search, before ranking.
// Category is the requested place-type tag that produced this record, not
// anything the provider reports; a place matched by two categories yields two
// candidates. DistanceKm is always computed from the querying coordinate.
type PlaceCandidate struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"review_count"`
	Coordinates Coordinate `json:"coordinates"`
	PlaceID     string     `json:"place_id"`
	DistanceKm  float64    `json:"distance_km"`
	PhotoURL    string     `json:"photo_url,omitempty"`
}

// PlaceReview is a single provider review attached to place details.
type PlaceReview struct {
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
}

// PlaceDetails holds the lazily fetched detail fields for a place.
// A zero value means the detail lookup failed or returned nothing.
type PlaceDetails struct {
	Address      string        `json:"address"`
	Website      string        `json:"website,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	OpeningHours []string      `json:"opening_hours,omitempty"`
	Photos       []string      `json:"photos,omitempty"`
	Reviews      []PlaceReview `json:"reviews,omitempty"`
}

// RankBy selects the provider-side ordering hint for a nearby search.
type RankBy string

const (
	RankByNone       RankBy = ""
	RankByProminence RankBy = "prominence"
)
