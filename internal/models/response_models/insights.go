package response_models

// TripInsights is the top-level planning context shown before the itinerary
// editor opens, projected from the model's TripPlan or synthesized by the
// fallback generator.
type TripInsights struct {
	TotalBudgetEstimate    float64       `json:"total_budget_estimate"`
	BestTimeToVisit        string        `json:"best_time_to_visit"`
	WeatherInfo            string        `json:"weather_info"`
	LocalCurrency          string        `json:"local_currency"`
	LanguageInfo           string        `json:"language_info"`
	CulturalTips           []string      `json:"cultural_tips"`
	PackingRecommendations []string      `json:"packing_recommendations"`
	EmergencyInfo          EmergencyInfo `json:"emergency_info"`
}

type EmergencyInfo struct {
	EmergencyNumber    string   `json:"emergency_number"`
	NearestEmbassy     string   `json:"nearest_embassy,omitempty"`
	ImportantAddresses []string `json:"important_addresses"`
}
