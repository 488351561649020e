package places

// Wire types for the places provider. Only the fields the pipeline relies on
// are decoded; everything else in the provider payload is ignored.

const statusOK = "OK"

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
}

type searchResult struct {
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Geometry         geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
	Photos           []photo  `json:"photos"`
}

type nearbySearchResponse struct {
	Status  string         `json:"status"`
	Results []searchResult `json:"results"`
}

type detailReview struct {
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
}

type openingHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type detailResult struct {
	FormattedAddress     string         `json:"formatted_address"`
	Website              string         `json:"website"`
	FormattedPhoneNumber string         `json:"formatted_phone_number"`
	OpeningHours         *openingHours  `json:"opening_hours"`
	Photos               []photo        `json:"photos"`
	Reviews              []detailReview `json:"reviews"`
}

type detailsResponse struct {
	Status string       `json:"status"`
	Result detailResult `json:"result"`
}

type geocodeResult struct {
	Geometry geometry `json:"geometry"`
}

type geocodeResponse struct {
	Status  string          `json:"status"`
	Results []geocodeResult `json:"results"`
}
