package assessment

import "github.com/vitaldash/vitaldash/internal/platform/classifier"

// Recommendations is the fixed advice triple attached to a classification.
type Recommendations struct {
	Tips     string `json:"tips"`
	Diet     string `json:"diet"`
	Exercise string `json:"exercise"`
}

var recommendationTable = map[classifier.Category]Recommendations{
	classifier.CategoryLow: {
		Tips:     "You may need to rest more and stay warm.",
		Diet:     "Eat nutrient-rich foods like soups, warm meals, and protein.",
		Exercise: "Light stretching or yoga; avoid intense workouts.",
	},
	classifier.CategoryNormal: {
		Tips:     "Your body temperature is normal. Keep maintaining healthy habits!",
		Diet:     "Balanced diet with fruits, vegetables, protein, and water.",
		Exercise: "Regular moderate exercise is good for health.",
	},
	classifier.CategoryHigh: {
		Tips:     "You may have a fever. Monitor your temperature closely.",
		Diet:     "Stay hydrated; light meals, avoid spicy/oily food.",
		Exercise: "Rest is important; avoid strenuous activity.",
	},
}

// RecommendationsFor returns the advice triple for a category. An unknown
// category yields the empty triple rather than an error.
func RecommendationsFor(category classifier.Category) Recommendations {
	return recommendationTable[category]
}
