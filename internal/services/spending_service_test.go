package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/trip_models"
)

func costedDays() []trip_models.DayItinerary {
	museum := 30.0
	tour := 50.0
	souvenir := 20.0
	return []trip_models.DayItinerary{
		{
			Date: "2026-06-01",
			Activities: []trip_models.Activity{
				{Title: "Museum", Category: trip_models.CategoryAttraction, Cost: &museum},
				{Title: "Lunch", Category: trip_models.CategoryRestaurant},
			},
		},
		{
			Date: "2026-06-02",
			Activities: []trip_models.Activity{
				{Title: "Walking tour", Category: trip_models.CategoryActivity, Cost: &tour},
				{Title: "Market", Category: trip_models.CategoryShopping, Cost: &souvenir},
			},
		},
	}
}

func TestSummarizeFallbackTotals(t *testing.T) {
	svc := NewSpendingService(nil)

	summary := svc.Summarize(context.Background(), "Paris", costedDays())

	assert.Equal(t, 100.0, summary.TotalBudget)
	assert.Equal(t, 50.0, summary.DailyAverage)

	require.Len(t, summary.DailyBreakdown, 2)
	assert.Equal(t, 30.0, summary.DailyBreakdown[0].Amount)
	assert.Equal(t, 70.0, summary.DailyBreakdown[1].Amount)

	// Sorted by amount descending; uncosted restaurant lunch is excluded.
	require.Len(t, summary.CategoryBreakdown, 3)
	assert.Equal(t, "Activity", summary.CategoryBreakdown[0].Category)
	assert.Equal(t, 50.0, summary.CategoryBreakdown[0].Amount)
	assert.Equal(t, 50, summary.CategoryBreakdown[0].Percentage)
	assert.Equal(t, 1, summary.CategoryBreakdown[0].Count)

	total := 0.0
	for _, entry := range summary.CategoryBreakdown {
		total += entry.Amount
	}
	assert.Equal(t, summary.TotalBudget, total)
}

func TestSummarizeFallbackNarrative(t *testing.T) {
	svc := NewSpendingService(nil)

	summary := svc.Summarize(context.Background(), "Paris", costedDays())

	assert.Contains(t, summary.Insights[0], "$100.00")
	assert.Contains(t, summary.Insights[2], "Activity")
	assert.NotEmpty(t, summary.BudgetTips)
	assert.Contains(t, summary.CurrencyInfo, "Paris")
}

func TestSummarizeZeroCostTrip(t *testing.T) {
	svc := NewSpendingService(nil)
	days := []trip_models.DayItinerary{
		{Date: "2026-06-01", Activities: []trip_models.Activity{
			{Title: "Free walking tour", Category: trip_models.CategoryActivity},
		}},
	}

	summary := svc.Summarize(context.Background(), "Lisbon", days)

	assert.Equal(t, 0.0, summary.TotalBudget)
	assert.Equal(t, 0.0, summary.DailyAverage)
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Contains(t, summary.Insights[2], "N/A")
}

func TestSummarizeUsesAIResponseWhenValid(t *testing.T) {
	client := &stubChatClient{response: `{
		"totalBudget": 100,
		"dailyAverage": 50,
		"categoryBreakdown": [{"category": "Attraction", "amount": 30, "percentage": 30, "count": 1}],
		"dailyBreakdown": [{"date": "2026-06-01", "amount": 30}],
		"insights": ["Spending is concentrated early in the trip"],
		"budgetTips": ["Book ahead"],
		"currencyInfo": "EUR is the local currency"
	}`}
	svc := NewSpendingService(client)

	summary := svc.Summarize(context.Background(), "Paris", costedDays())

	assert.Equal(t, "EUR is the local currency", summary.CurrencyInfo)
	assert.Equal(t, spendingMaxTokens, client.gotMax)
	assert.Contains(t, client.gotUser, "Museum")
	assert.Contains(t, client.gotUser, "$100.00")
}

func TestSummarizeFallsBackOnBadAIResponse(t *testing.T) {
	for name, client := range map[string]*stubChatClient{
		"transport error": {err: errors.New("timeout")},
		"malformed json":  {response: "{broken"},
		"empty breakdown": {response: `{"totalBudget": 100, "categoryBreakdown": []}`},
	} {
		t.Run(name, func(t *testing.T) {
			summary := NewSpendingService(client).Summarize(context.Background(), "Paris", costedDays())

			assert.Equal(t, 100.0, summary.TotalBudget)
			assert.NotEmpty(t, summary.CategoryBreakdown)
		})
	}
}
