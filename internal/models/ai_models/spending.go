package ai_models

type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Count      int     `json:"count"`
}

type DailySpending struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type SpendingSummary struct {
	TotalBudget       float64            `json:"totalBudget"`
	DailyAverage      float64            `json:"dailyAverage"`
	CategoryBreakdown []CategorySpending `json:"categoryBreakdown"`
	DailyBreakdown    []DailySpending    `json:"dailyBreakdown"`
	Insights          []string           `json:"insights"`
	BudgetTips        []string           `json:"budgetTips"`
	CurrencyInfo      string             `json:"currencyInfo"`
}
