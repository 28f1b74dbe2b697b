package estimate

import "github.com/gcharris/writers-factory-app-sub009/internal/engine"

type EstimateRequest struct {
	MonthlyBudget *float64 `json:"monthly_budget" binding:"omitempty,min=0"`
}

type EstimateResponse struct {
	Estimate engine.CostEstimate `json:"estimate"`
	// MonthToDateSpend is the actual recorded spend so far this month,
	// shown next to the projection.
	MonthToDateSpend float64      `json:"month_to_date_spend"`
	Display          DisplayCosts `json:"display"`
}

// DisplayCosts carries the UI-ready renderings of the projection figures.
type DisplayCosts struct {
	FixedMonthly          string `json:"fixed_monthly"`
	VariablePerTournament string `json:"variable_per_tournament"`
	Total                 string `json:"total"`
	MonthToDateSpend      string `json:"month_to_date_spend"`
}
