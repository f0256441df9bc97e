package trip_models

import (
	"strings"
	"time"
)

type BookedStatus string

const (
	BookedStatusNotBooked BookedStatus = "not-booked"
	BookedStatusBooked    BookedStatus = "booked"
	BookedStatusConfirmed BookedStatus = "confirmed"
)

// TripParameters is the immutable input to a planning run. Callers are
// responsible for Destination being non-empty and StartDate <= EndDate.
type TripParameters struct {
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	TripType      TripType
	Collaborators []string
}

type Trip struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Destination   string    `json:"destination"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TripType      TripType  `json:"trip_type"`
	Collaborators []string  `json:"collaborators"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Activity struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Location     string           `json:"location"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Category     ActivityCategory `json:"category"`
	Notes        string           `json:"notes"`
	Cost         *float64         `json:"cost,omitempty"`
	BookedStatus BookedStatus     `json:"booked_status"`
}

type DayItinerary struct {
	ID         string     `json:"id"`
	TripID     string     `json:"trip_id"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Notes      string     `json:"notes"`
	Budget     float64    `json:"budget"`
}

// AICuratedMarker is the provenance tag written into Activity.Notes for every
// generated activity, AI-sourced or fallback alike. The editing surface keys
// the suggest-alternative and undo controls off this substring.
const AICuratedMarker = "AI curated"

func (a Activity) IsAICurated() bool {
	return strings.Contains(a.Notes, AICuratedMarker)
}
