package weather

import (
	"strings"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

const maxBadges = 3

// ClothingAdvice suggests what to wear for a temperature in Celsius.
func ClothingAdvice(tempC float64) string {
	switch {
	case tempC > 25:
		return "Light clothing and sunscreen"
	case tempC > 15:
		return "Light jacket or sweater"
	default:
		return "Warm coat and layers"
	}
}

var outdoorCategories = map[string]bool{
	"park":             true,
	"beach":            true,
	"botanical_garden": true,
	"nature":           true,
}

var indoorCategories = map[string]bool{
	"museum":          true,
	"art_gallery":     true,
	"cultural_center": true,
}

var categoryBlurbs = map[string]string{
	"spa":                "Relaxing ambience perfect for unwinding",
	"amusement_park":     "Exciting rides and fun atmosphere",
	"restaurant":         "Known for delicious cuisine and great service",
	"museum":             "Rich in culture and history",
	"park":               "Peaceful natural surroundings",
	"shopping_mall":      "Great variety of stores and amenities",
	"tourist_attraction": "Must-see spot in the area",
	"landmark":           "Iconic historical location",
	"art_gallery":        "Explore beautiful artworks",
	"zoo":                "Family-friendly wildlife experience",
	"church":             "Architectural beauty and serenity",
	"beach":              "Sandy shores and ocean views",
	"hiking_trail":       "Adventure with scenic trails",
	"library":            "Quiet space for peaceful time",
}

const genericBlurb = "Great choice for your current mood"

// Feedback builds up to three short badges for a ranked place: a distance
// bucket, a weather hint for clearly indoor or outdoor categories, and a
// category blurb. Weather may be nil, in which case the hint is skipped.
func Feedback(place types.PlaceCandidate, weather *types.WeatherSnapshot) []string {
	var badges []string

	if place.DistanceKm < 1.0 {
		badges = append(badges, "Conveniently located nearby")
	} else if place.DistanceKm < 3.0 {
		badges = append(badges, "Just a short trip away")
	}

	if weather != nil {
		raining := strings.Contains(strings.ToLower(weather.Condition), "rain")
		switch {
		case outdoorCategories[place.Category]:
			if !raining && weather.TempC > 15 {
				badges = append(badges, "Perfect for enjoying the nice weather")
			} else if raining {
				badges = append(badges, "Beautiful even in rain, bring an umbrella")
			}
		case indoorCategories[place.Category]:
			if raining || weather.TempC < 15 {
				badges = append(badges, "Great indoor activity for today's weather")
			} else {
				badges = append(badges, "Cool escape from the heat")
			}
		}
	}

	blurb, ok := categoryBlurbs[place.Category]
	if !ok {
		blurb = genericBlurb
	}
	badges = append(badges, blurb)

	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	return badges
}
