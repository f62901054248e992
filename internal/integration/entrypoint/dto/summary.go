// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneywise/backend/internal/application/usecase/summary"
)

// SummaryResponse represents the dashboard summary API response.
type SummaryResponse struct {
	PeriodIncome    string `json:"period_income"`
	PeriodExpenses  string `json:"period_expenses"`
	PendingIncome   string `json:"pending_income"`
	PendingExpenses string `json:"pending_expenses"`
	CurrentBalance  string `json:"current_balance"`
	GoalsProgress   string `json:"goals_progress"`
	TotalInvested   string `json:"total_invested"`
	HasTransactions bool   `json:"has_transactions"`
}

// ToSummaryResponse converts summary output to the API response.
// Decimal values are rounded to 2dp here, at the wire boundary only.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		PeriodIncome:    output.PeriodIncome.StringFixed(2),
		PeriodExpenses:  output.PeriodExpenses.StringFixed(2),
		PendingIncome:   output.PendingIncome.StringFixed(2),
		PendingExpenses: output.PendingExpenses.StringFixed(2),
		CurrentBalance:  output.CurrentBalance.StringFixed(2),
		GoalsProgress:   output.GoalsProgress.StringFixed(2),
		TotalInvested:   output.TotalInvested.StringFixed(2),
		HasTransactions: output.HasTransactions,
	}
}
