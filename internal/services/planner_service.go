package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"wayfare/internal/models/ai_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/pkg/utils"
)

const (
	itineraryMaxTokens = 4000
	spendingMaxTokens  = 2000

	itinerarySystemPrompt = "You are an expert travel planner with extensive knowledge of destinations worldwide. " +
		"Provide detailed, practical, and culturally-aware travel itineraries in valid JSON format only. " +
		"Do not include any text outside the JSON response."
)

// PlanResult is what trip creation hands to the view layer: one itinerary
// per calendar day plus the insights block, from whichever path produced it.
type PlanResult struct {
	Days     []trip_models.DayItinerary
	Insights response_models.TripInsights
	Source   response_models.PlanSource
}

type PlannerServiceInterface interface {
	// GeneratePlan runs the full pipeline. It never fails: any error on the
	// AI path is absorbed and the deterministic generator populates the
	// provided day shells instead.
	GeneratePlan(ctx context.Context, params trip_models.TripParameters, trip trip_models.Trip, shells []trip_models.DayItinerary) *PlanResult
}

type PlannerService struct {
	client      utils.ChatClientInterface
	suggestions SuggestionServiceInterface
}

// NewPlannerService wires the pipeline. A nil client means credentials were
// absent at startup; the service then serves fallback plans without ever
// attempting a network call.
func NewPlannerService(client utils.ChatClientInterface, suggestions SuggestionServiceInterface) PlannerServiceInterface {
	return &PlannerService{
		client:      client,
		suggestions: suggestions,
	}
}

func (p *PlannerService) GeneratePlan(ctx context.Context, params trip_models.TripParameters, trip trip_models.Trip, shells []trip_models.DayItinerary) *PlanResult {
	duration := utils.InclusiveDays(params.StartDate, params.EndDate)

	if p.client == nil {
		log.Printf("itinerary generation for %s: %v, using fallback", params.Destination, utils.ErrMissingAPIKey)
		return p.fallbackPlan(params, shells, duration)
	}

	raw, err := p.client.GenerateJSON(ctx, itinerarySystemPrompt, buildTripPrompt(params, duration), itineraryMaxTokens)
	if err != nil {
		log.Printf("AI request failed for %s: %v", params.Destination, err)
		return p.fallbackPlan(params, shells, duration)
	}

	plan, err := parseTripPlan(raw, duration)
	if err != nil {
		log.Printf("AI response rejected for %s: %v", params.Destination, err)
		return p.fallbackPlan(params, shells, duration)
	}

	days, insights := convertTripPlan(plan, trip.ID)
	return &PlanResult{Days: days, Insights: insights, Source: response_models.PlanSourceAI}
}

func (p *PlannerService) fallbackPlan(params trip_models.TripParameters, shells []trip_models.DayItinerary, duration int) *PlanResult {
	days := p.suggestions.PopulateDays(params.Destination, params.TripType, shells)
	insights := p.suggestions.FallbackInsights(params.Destination, duration)
	return &PlanResult{Days: days, Insights: insights, Source: response_models.PlanSourceFallback}
}

// buildTripPrompt embeds the trip parameters and the exact JSON contract the
// model must honor. Pure string construction, no I/O.
func buildTripPrompt(params trip_models.TripParameters, duration int) string {
	var b strings.Builder

	start := utils.FormatDate(params.StartDate)
	end := utils.FormatDate(params.EndDate)

	fmt.Fprintf(&b, "Create a detailed %d-day trip itinerary for %s from %s to %s.\n\n",
		duration, params.Destination, start, end)

	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", params.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", duration)
	fmt.Fprintf(&b, "- Trip Type: %s\n", params.TripType)
	fmt.Fprintf(&b, "- Travel Style: %s\n", params.TripType.StyleDescription())
	if n := len(params.Collaborators); n > 0 {
		fmt.Fprintf(&b, "- Traveling with: %d other people\n", n)
	} else {
		b.WriteString("- Solo travel\n")
	}

	fmt.Fprintf(&b, `
Please provide a comprehensive trip plan in JSON format with the following structure:
{
  "destination": "%s",
  "duration": %d,
  "totalBudgetEstimate": number (in USD),
  "bestTimeToVisit": "string",
  "weatherInfo": "string describing expected weather",
  "localCurrency": "string",
  "languageInfo": "string about local language and useful phrases",
  "culturalTips": ["array of cultural etiquette tips"],
  "packingRecommendations": ["array of packing suggestions"],
  "dayPlans": [
    {
      "date": "YYYY-MM-DD",
      "theme": "string describing the day's focus",
      "activities": [
        {
          "title": "Activity name",
          "description": "Detailed description",
          "location": "Specific address or area",
          "startTime": "HH:MM",
          "endTime": "HH:MM",
          "category": "accommodation|transport|restaurant|attraction|activity|shopping|other",
          "estimatedCost": number (in USD, optional),
          "bookingRequired": boolean,
          "tips": ["array of specific tips for this activity"]
        }
      ],
      "localTips": ["array of tips specific to this day"],
      "budgetEstimate": number (daily budget in USD)
    }
  ],
  "emergencyInfo": {
    "emergencyNumber": "local emergency number",
    "nearestEmbassy": "if applicable",
    "importantAddresses": ["array of important locations"]
  }
}

Requirements:
1. Create realistic daily schedules (8 AM to 10 PM) with exactly %d entries in dayPlans, one per calendar day from %s to %s
2. Include a mix of must-see attractions, local experiences, and %s activities
3. Suggest specific restaurants, hotels, and attractions with real names when possible
4. Provide realistic cost estimates
5. Include practical travel tips and cultural insights
6. Balance popular tourist spots with authentic local experiences
7. Consider travel time between activities
8. Include rest periods and meal times
9. Include diverse food and drink experiences: local cuisine, street food, cafés, cooking classes, food markets
10. Suggest breakfast, lunch, dinner, and snack options with variety in dining styles and price points

Focus on creating an authentic, well-researched itinerary that captures the essence of %s while catering to a %s travel style.
`, params.Destination, duration, duration, start, end, params.TripType, params.Destination, params.TripType)

	return b.String()
}

// cleanJSONResponse strips markdown code fences some models wrap around
// their JSON despite the system instruction.
func cleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// parseTripPlan decodes and structurally validates the model's reply. It
// fails closed: any missing required field rejects the whole payload rather
// than partially trusting it.
func parseTripPlan(raw string, expectedDays int) (*ai_models.TripPlan, error) {
	cleaned := cleanJSONResponse(raw)

	var plan ai_models.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidPlanShape, err)
	}

	if len(plan.DayPlans) == 0 {
		return nil, fmt.Errorf("%w: empty dayPlans", utils.ErrInvalidPlanShape)
	}
	if len(plan.DayPlans) != expectedDays {
		return nil, fmt.Errorf("%w: expected %d day plans, got %d", utils.ErrInvalidPlanShape, expectedDays, len(plan.DayPlans))
	}
	for i, day := range plan.DayPlans {
		if day.Date == "" {
			return nil, fmt.Errorf("%w: day %d missing date", utils.ErrInvalidPlanShape, i+1)
		}
		if _, err := utils.ParseDate(day.Date); err != nil {
			return nil, fmt.Errorf("%w: day %d: %v", utils.ErrInvalidPlanShape, i+1, err)
		}
	}

	return &plan, nil
}

// convertTripPlan maps the validated wire plan into session day itineraries
// plus the insights block shown before the editor opens. Activity order
// within a day is preserved as given.
func convertTripPlan(plan *ai_models.TripPlan, tripID string) ([]trip_models.DayItinerary, response_models.TripInsights) {
	days := lo.Map(plan.DayPlans, func(dayPlan ai_models.DayPlan, _ int) trip_models.DayItinerary {
		return trip_models.DayItinerary{
			ID:     uuid.New().String(),
			TripID: tripID,
			Date:   dayPlan.Date,
			Activities: lo.Map(dayPlan.Activities, func(s ai_models.ActivitySuggestion, _ int) trip_models.Activity {
				return convertSuggestion(s)
			}),
			Notes:  composeDayNotes(dayPlan.Theme, dayPlan.LocalTips),
			Budget: dayPlan.BudgetEstimate,
		}
	})

	insights := response_models.TripInsights{
		TotalBudgetEstimate:    plan.TotalBudgetEstimate,
		BestTimeToVisit:        plan.BestTimeToVisit,
		WeatherInfo:            plan.WeatherInfo,
		LocalCurrency:          plan.LocalCurrency,
		LanguageInfo:           plan.LanguageInfo,
		CulturalTips:           plan.CulturalTips,
		PackingRecommendations: plan.PackingRecommendations,
		EmergencyInfo: response_models.EmergencyInfo{
			EmergencyNumber:    plan.EmergencyInfo.EmergencyNumber,
			NearestEmbassy:     plan.EmergencyInfo.NearestEmbassy,
			ImportantAddresses: plan.EmergencyInfo.ImportantAddresses,
		},
	}

	return days, insights
}

func convertSuggestion(s ai_models.ActivitySuggestion) trip_models.Activity {
	category := trip_models.ActivityCategory(s.Category)
	if !category.Valid() {
		category = trip_models.CategoryOther
	}

	return trip_models.Activity{
		ID:           uuid.New().String(),
		Title:        s.Title,
		Description:  s.Description,
		Location:     s.Location,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Category:     category,
		Notes:        composeActivityNotes(s.Tips, s.BookingRequired),
		Cost:         s.EstimatedCost,
		BookedStatus: trip_models.BookedStatusNotBooked,
	}
}

func composeActivityNotes(tips []string, bookingRequired bool) string {
	var b strings.Builder
	b.WriteString(trip_models.AICuratedMarker + " activity\n\nTips:\n")
	b.WriteString(bulletList(tips))
	if bookingRequired {
		b.WriteString("\n\nBooking required in advance")
	}
	return b.String()
}

func composeDayNotes(theme string, localTips []string) string {
	return theme + "\n\nLocal Tips:\n" + bulletList(localTips)
}

func bulletList(items []string) string {
	lines := lo.Map(items, func(item string, _ int) string {
		return "• " + item
	})
	return strings.Join(lines, "\n")
}
