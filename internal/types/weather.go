package types

// WeatherSnapshot is the current-conditions summary shown next to results.
type WeatherSnapshot struct {
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	HumidityPct int     `json:"humidity_pct"`
	Condition   string  `json:"condition"`
}
