package types

// MoodProfiles maps a mood label to the place-type tags searched for it.
// Read-only data: new moods are added here, never in pipeline logic.
var MoodProfiles = map[string][]string{
	"bored":       {"park", "museum", "amusement_park", "movie_theater"},
	"excited":     {"amusement_park", "stadium", "casino", "bowling_alley"},
	"hungry":      {"restaurant", "cafe", "bakery", "food_court"},
	"romantic":    {"spa", "restaurant", "park", "art_gallery"},
	"adventurous": {"hiking_trail", "campground", "ski_resort", "climbing_gym"},
	"cultural":    {"museum", "art_gallery", "place_of_worship", "cultural_center"},
	"shopping":    {"shopping_mall", "clothing_store", "jewelry_store", "market"},
	"relaxed":     {"spa", "library", "book_store", "park"},
	"sporty":      {"gym", "stadium", "sports_complex", "swimming_pool"},
	"nature":      {"park", "zoo", "botanical_garden", "beach"},
	"historical":  {"temples", "museum", "monument", "historical_landmark", "archaeological_site"},
	"social":      {"bar", "night_club", "bowling_alley", "karaoke_bar"},
	"family":      {"aquarium", "zoo", "playground", "family_entertainment_center"},
}

// PopularCategories is the fixed category set behind the popular-places view.
var PopularCategories = []string{
	"tourist_attraction", "museum", "park", "landmark",
	"shopping_mall", "art_gallery", "zoo", "church",
}

// MoodCategories returns the category tags for a mood, or false when the
// mood label is unknown.
func MoodCategories(mood string) ([]string, bool) {
	categories, ok := MoodProfiles[mood]
	return categories, ok
}

// MoodLabels lists the known mood labels for presentation callers.
func MoodLabels() []string {
	labels := make([]string, 0, len(MoodProfiles))
	for mood := range MoodProfiles {
		labels = append(labels, mood)
	}
	return labels
}
