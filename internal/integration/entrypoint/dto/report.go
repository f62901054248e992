// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneywise/backend/internal/application/usecase/report"
)

// CategoryExpenseResponse represents one slice of the expenses-by-category chart.
type CategoryExpenseResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// MonthPointResponse represents one month of the balance evolution chart.
type MonthPointResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// ChartsResponse represents the report charts API response.
type ChartsResponse struct {
	ExpensesByCategory []CategoryExpenseResponse `json:"expenses_by_category"`
	BalanceEvolution   []MonthPointResponse      `json:"balance_evolution"`
	HasData            bool                      `json:"has_data"`
}

// ToChartsResponse converts aggregator output into the API response.
// Decimal values are rounded to 2dp here, at the wire boundary only.
func ToChartsResponse(output *report.GetChartsOutput) ChartsResponse {
	expenses := make([]CategoryExpenseResponse, len(output.ExpensesByCategory))
	for i, e := range output.ExpensesByCategory {
		expenses[i] = CategoryExpenseResponse{
			Name:  e.Name,
			Value: e.Value.StringFixed(2),
			Color: e.Color,
		}
	}

	evolution := make([]MonthPointResponse, len(output.BalanceEvolution))
	for i, p := range output.BalanceEvolution {
		evolution[i] = MonthPointResponse{
			Month:    p.Month.Format("2006-01"),
			Income:   p.Income.StringFixed(2),
			Expenses: p.Expenses.StringFixed(2),
			Balance:  p.Balance.StringFixed(2),
		}
	}

	return ChartsResponse{
		ExpensesByCategory: expenses,
		BalanceEvolution:   evolution,
		HasData:            output.HasData,
	}
}
