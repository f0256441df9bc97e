package services

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"wayfare/internal/knowledge"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
)

// Nominal slot costs in USD. Restaurants deliberately carry no cost; prices
// are never displayed for them anyway.
const (
	costFirstMorningAttraction = 25
	costMorningActivity        = 15
	costAfternoonAdventure     = 45
	costAfternoonAttraction    = 20
	costEveningActivity        = 25
	fallbackDailyBudget        = 100
)

// drawPlaceholder is used if a knowledge list is ever empty, so a draw can
// never fail.
const drawPlaceholder = "Local experience"

type timeSlot int

const (
	slotMorning timeSlot = iota
	slotLunch
	slotAfternoon
	slotDinner
	slotEvening
)

type SuggestionServiceInterface interface {
	// PopulateDays fills empty day shells with a slot-based schedule drawn
	// from the destination knowledge table. Never fails, for any destination.
	PopulateDays(destination string, tripType trip_models.TripType, days []trip_models.DayItinerary) []trip_models.DayItinerary

	// ReplaceActivity draws a fresh suggestion for the slot the given
	// activity occupies, preserving its id and time window.
	ReplaceActivity(destination string, tripType trip_models.TripType, dayNumber int, current trip_models.Activity) trip_models.Activity

	// FallbackInsights synthesizes the generic insights block shown when no
	// AI-sourced insights exist.
	FallbackInsights(destination string, duration int) response_models.TripInsights
}

type SuggestionService struct {
	source knowledge.DestinationSource

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSuggestionService builds the generator around an injectable random
// source so scenario tests can pin the draws.
func NewSuggestionService(source knowledge.DestinationSource, seed int64) *SuggestionService {
	return &SuggestionService{
		source: source,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *SuggestionService) PopulateDays(destination string, tripType trip_models.TripType, days []trip_models.DayItinerary) []trip_models.DayItinerary {
	data := s.source.Lookup(knowledge.NormalizeKey(destination))

	out := make([]trip_models.DayItinerary, 0, len(days))
	for i, day := range days {
		dayNumber := i + 1

		activities := []trip_models.Activity{
			s.generateActivity(data, slotMorning, dayNumber, tripType, destination),
			s.generateActivity(data, slotLunch, dayNumber, tripType, destination),
			s.generateActivity(data, slotAfternoon, dayNumber, tripType, destination),
			s.generateActivity(data, slotDinner, dayNumber, tripType, destination),
		}
		// Evening slot on odd days, or every day for nightlife trips.
		if dayNumber%2 == 1 || tripType == trip_models.TripTypeNightlife {
			activities = append(activities, s.generateActivity(data, slotEvening, dayNumber, tripType, destination))
		}

		day.Activities = activities
		day.Notes = fmt.Sprintf("Day %d in %s - %s", dayNumber, destination, tripType.ItineraryDescription())
		day.Budget = fallbackDailyBudget
		out = append(out, day)
	}
	return out
}

func (s *SuggestionService) ReplaceActivity(destination string, tripType trip_models.TripType, dayNumber int, current trip_models.Activity) trip_models.Activity {
	data := s.source.Lookup(knowledge.NormalizeKey(destination))

	replacement := s.generateActivity(data, slotForStartTime(current.StartTime), dayNumber, tripType, destination)
	replacement.ID = current.ID
	replacement.StartTime = current.StartTime
	replacement.EndTime = current.EndTime
	return replacement
}

func slotForStartTime(startTime string) timeSlot {
	switch {
	case startTime < "12:00":
		return slotMorning
	case startTime < "14:00":
		return slotLunch
	case startTime < "18:00":
		return slotAfternoon
	case startTime < "21:30":
		return slotDinner
	default:
		return slotEvening
	}
}

func (s *SuggestionService) generateActivity(data knowledge.DestinationData, slot timeSlot, dayNumber int, tripType trip_models.TripType, destination string) trip_models.Activity {
	var (
		category    trip_models.ActivityCategory
		title       string
		description string
		startTime   string
		endTime     string
		cost        *float64
	)

	switch slot {
	case slotMorning:
		category = trip_models.CategoryAttraction
		startTime, endTime = "09:00", "12:00"
		if dayNumber == 1 {
			title = s.draw(data.Attractions)
			description = fmt.Sprintf("Begin your %s journey with this must-see attraction", destination)
			cost = costOf(costFirstMorningAttraction)
		} else {
			category = trip_models.CategoryActivity
			title = s.draw(data.Activities)
			description = "Morning activity to immerse in local culture and experiences"
			cost = costOf(costMorningActivity)
		}

	case slotLunch:
		category = trip_models.CategoryRestaurant
		startTime, endTime = "12:00", "13:30"
		title = s.draw(data.Restaurants)
		description = "Savor authentic local flavors and specialties"

	case slotAfternoon:
		startTime, endTime = "14:00", "17:00"
		if tripType == trip_models.TripTypeAdventure {
			category = trip_models.CategoryActivity
			title = s.draw(data.Activities)
			description = "Thrilling adventure activity with local guides"
			cost = costOf(costAfternoonAdventure)
		} else {
			category = trip_models.CategoryAttraction
			title = s.draw(data.Attractions)
			description = fmt.Sprintf("Discover more of %s's cultural highlights and hidden gems", destination)
			cost = costOf(costAfternoonAttraction)
		}

	case slotDinner:
		category = trip_models.CategoryRestaurant
		startTime, endTime = "19:00", "21:00"
		title = s.draw(data.Restaurants)
		description = "Delightful dinner featuring regional cuisine and drinks"

	case slotEvening:
		category = trip_models.CategoryActivity
		startTime, endTime = "21:30", "23:00"
		title = s.draw(data.Activities)
		description = "Evening entertainment, nightlife, and local drinks scene"
		cost = costOf(costEveningActivity)
	}

	return trip_models.Activity{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Location:    destination,
		StartTime:   startTime,
		EndTime:     endTime,
		Category:    category,
		// Same provenance tag as the AI path: it drives the suggest/undo
		// controls, not an actual claim about where the text came from.
		Notes:        fmt.Sprintf("%s for your %s experience", trip_models.AICuratedMarker, destination),
		Cost:         cost,
		BookedStatus: trip_models.BookedStatusNotBooked,
	}
}

// draw picks uniformly from list, the single source of non-determinism in
// the fallback path.
func (s *SuggestionService) draw(list []string) string {
	if len(list) == 0 {
		return drawPlaceholder
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return list[s.rng.Intn(len(list))]
}

func costOf(v float64) *float64 {
	return &v
}

func (s *SuggestionService) FallbackInsights(destination string, duration int) response_models.TripInsights {
	return response_models.TripInsights{
		TotalBudgetEstimate: float64(duration * fallbackDailyBudget),
		BestTimeToVisit:     "Year-round destination with seasonal variations",
		WeatherInfo:         "Check local weather forecast before traveling",
		LocalCurrency:       "Local currency",
		LanguageInfo:        "English is widely spoken in tourist areas",
		CulturalTips: []string{
			"Respect local customs",
			"Dress appropriately for religious sites",
		},
		PackingRecommendations: []string{
			"Comfortable walking shoes",
			"Weather-appropriate clothing",
			"Travel adapter",
		},
		EmergencyInfo: response_models.EmergencyInfo{
			EmergencyNumber:    "911",
			ImportantAddresses: []string{"Local hospital", "Tourist information center"},
		},
	}
}
