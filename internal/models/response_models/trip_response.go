package response_models

import (
	"wayfare/internal/models/trip_models"
)

// PlanSource tells the client which path produced the itinerary. The
// insights-presentation step is only offered for the AI path.
type PlanSource string

const (
	PlanSourceAI       PlanSource = "ai"
	PlanSourceFallback PlanSource = "fallback"
)

type TripCreateResponse struct {
	Trip     trip_models.Trip           `json:"trip"`
	Days     []trip_models.DayItinerary `json:"days"`
	Insights TripInsights               `json:"insights"`
	Source   PlanSource                 `json:"source"`
	// Set on the fallback path so the client can show the one-time advisory.
	Advisory string `json:"advisory,omitempty"`
}

type TripDetailResponse struct {
	Trip     trip_models.Trip           `json:"trip"`
	Days     []trip_models.DayItinerary `json:"days"`
	Insights TripInsights               `json:"insights"`
	Source   PlanSource                 `json:"source"`
}

type SharedTripResponse struct {
	Title       string                     `json:"title"`
	Destination string                     `json:"destination"`
	DateRange   string                     `json:"date_range"`
	Days        []trip_models.DayItinerary `json:"days"`
}

type ShareLinkResponse struct {
	Token    string `json:"token"`
	ShareURL string `json:"share_url"`
}
