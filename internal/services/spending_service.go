package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"wayfare/internal/models/ai_models"
	"wayfare/internal/models/trip_models"
	"wayfare/pkg/utils"
)

const spendingSystemPrompt = "You are a financial travel advisor. " +
	"Analyze the provided trip spending data and respond with a valid JSON object only."

type SpendingServiceInterface interface {
	// Summarize produces a budget analysis for the trip. Costed activities
	// are aggregated locally; the narrative fields come from the model when
	// available, else from templates. Never fails.
	Summarize(ctx context.Context, destination string, days []trip_models.DayItinerary) ai_models.SpendingSummary
}

type SpendingService struct {
	client utils.ChatClientInterface
}

func NewSpendingService(client utils.ChatClientInterface) SpendingServiceInterface {
	return &SpendingService{client: client}
}

func (s *SpendingService) Summarize(ctx context.Context, destination string, days []trip_models.DayItinerary) ai_models.SpendingSummary {
	total, perCategory, perCategoryCount, perDay := aggregateSpending(days)

	if s.client == nil {
		log.Printf("spending summary for %s: %v, using computed summary", destination, utils.ErrMissingAPIKey)
	} else {
		summary, err := s.requestSummary(ctx, destination, days, total)
		if err != nil {
			log.Printf("spending summary request failed, using computed summary: %v", err)
		} else {
			return summary
		}
	}

	return fallbackSummary(destination, days, total, perCategory, perCategoryCount, perDay)
}

func (s *SpendingService) requestSummary(ctx context.Context, destination string, days []trip_models.DayItinerary, total float64) (ai_models.SpendingSummary, error) {
	raw, err := s.client.GenerateJSON(ctx, spendingSystemPrompt, buildSpendingPrompt(destination, days, total), spendingMaxTokens)
	if err != nil {
		return ai_models.SpendingSummary{}, fmt.Errorf("%w: %v", utils.ErrAIRequestFailed, err)
	}

	var summary ai_models.SpendingSummary
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &summary); err != nil {
		return ai_models.SpendingSummary{}, fmt.Errorf("%w: %v", utils.ErrInvalidPlanShape, err)
	}
	if len(summary.CategoryBreakdown) == 0 {
		return ai_models.SpendingSummary{}, fmt.Errorf("%w: empty category breakdown", utils.ErrInvalidPlanShape)
	}
	return summary, nil
}

func buildSpendingPrompt(destination string, days []trip_models.DayItinerary, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the spending for a trip to %s with a total planned budget of $%.2f.\n\n", destination, total)
	b.WriteString("Planned expenses per day:\n")
	for i, day := range days {
		fmt.Fprintf(&b, "Day %d (%s):\n", i+1, day.Date)
		for _, activity := range day.Activities {
			if activity.Cost == nil || *activity.Cost <= 0 {
				continue
			}
			fmt.Fprintf(&b, "- %s (%s): $%.2f\n", activity.Title, activity.Category.Label(), *activity.Cost)
		}
	}
	b.WriteString(`
Respond with this exact JSON structure:
{
  "totalBudget": number,
  "dailyAverage": number,
  "categoryBreakdown": [{"category": "string", "amount": number, "percentage": number, "count": number}],
  "dailyBreakdown": [{"date": "YYYY-MM-DD", "amount": number}],
  "insights": ["string"],
  "budgetTips": ["string"],
  "currencyInfo": "string"
}

Provide practical, specific insights and money-saving tips for this destination. Respond with valid JSON only.`)
	return b.String()
}

func aggregateSpending(days []trip_models.DayItinerary) (total float64, perCategory map[string]float64, perCategoryCount map[string]int, perDay []ai_models.DailySpending) {
	perCategory = make(map[string]float64)
	perCategoryCount = make(map[string]int)

	for _, day := range days {
		dayTotal := 0.0
		for _, activity := range day.Activities {
			if activity.Cost == nil || *activity.Cost <= 0 {
				continue
			}
			label := activity.Category.Label()
			perCategory[label] += *activity.Cost
			perCategoryCount[label]++
			dayTotal += *activity.Cost
		}
		total += dayTotal
		perDay = append(perDay, ai_models.DailySpending{
			Date:   day.Date,
			Amount: math.Round(dayTotal*100) / 100,
		})
	}
	return total, perCategory, perCategoryCount, perDay
}

func fallbackSummary(destination string, days []trip_models.DayItinerary, total float64, perCategory map[string]float64, perCategoryCount map[string]int, perDay []ai_models.DailySpending) ai_models.SpendingSummary {
	breakdown := make([]ai_models.CategorySpending, 0, len(perCategory))
	for label, amount := range perCategory {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(amount / total * 100))
		}
		breakdown = append(breakdown, ai_models.CategorySpending{
			Category:   label,
			Amount:     amount,
			Percentage: percentage,
			Count:      perCategoryCount[label],
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	dailyAverage := 0.0
	if len(days) > 0 {
		dailyAverage = math.Round(total/float64(len(days))*100) / 100
	}

	topCategory := "N/A"
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Category
	}

	return ai_models.SpendingSummary{
		TotalBudget:       total,
		DailyAverage:      dailyAverage,
		CategoryBreakdown: breakdown,
		DailyBreakdown:    perDay,
		Insights: []string{
			fmt.Sprintf("Your total trip budget is $%.2f across %d days", total, len(days)),
			fmt.Sprintf("Daily average spending is $%.2f", dailyAverage),
			fmt.Sprintf("Your largest spending category is %s", topCategory),
			fmt.Sprintf("You have planned expenses in %d categories", len(breakdown)),
			"Restaurant reservations usually do not require upfront payment",
			"Keep a small cash reserve for unplanned local expenses",
		},
		BudgetTips: []string{
			"Book attractions online in advance for discounted rates",
			"Eat lunch at local spots away from major tourist areas",
			"Use public transport passes instead of single tickets",
			"Look for free walking tours and museum days",
			"Set a daily spending limit and track it each evening",
			"Carry a refillable water bottle to avoid bottled water costs",
			"Compare prices for activities across multiple providers",
			"Travel cards often beat currency exchange counters on fees",
		},
		CurrencyInfo: fmt.Sprintf("Amounts are shown in USD. Check current exchange rates for %s before you travel.", destination),
	}
}
