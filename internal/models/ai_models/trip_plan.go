package ai_models

// Wire shapes for the model's JSON reply. Decoded strictly: a reply that does
// not carry a dated, non-empty dayPlans sequence is rejected and the caller
// falls back to the deterministic generator.

type ActivitySuggestion struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Category        string   `json:"category"`
	EstimatedCost   *float64 `json:"estimatedCost,omitempty"`
	BookingRequired bool     `json:"bookingRequired"`
	Tips            []string `json:"tips"`
}

type DayPlan struct {
	Date           string               `json:"date"`
	Theme          string               `json:"theme"`
	Activities     []ActivitySuggestion `json:"activities"`
	LocalTips      []string             `json:"localTips"`
	BudgetEstimate float64              `json:"budgetEstimate"`
}

type EmergencyInfo struct {
	EmergencyNumber    string   `json:"emergencyNumber"`
	NearestEmbassy     string   `json:"nearestEmbassy,omitempty"`
	ImportantAddresses []string `json:"importantAddresses"`
}

type TripPlan struct {
	Destination            string        `json:"destination"`
	Duration               int           `json:"duration"`
	TotalBudgetEstimate    float64       `json:"totalBudgetEstimate"`
	BestTimeToVisit        string        `json:"bestTimeToVisit"`
	WeatherInfo            string        `json:"weatherInfo"`
	LocalCurrency          string        `json:"localCurrency"`
	LanguageInfo           string        `json:"languageInfo"`
	CulturalTips           []string      `json:"culturalTips"`
	PackingRecommendations []string      `json:"packingRecommendations"`
	DayPlans               []DayPlan     `json:"dayPlans"`
	EmergencyInfo          EmergencyInfo `json:"emergencyInfo"`
}
