// Package summary contains the dashboard summary use cases.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/domain/entity"
)

// PeriodFilter restricts the period KPIs to transactions dated within the
// inclusive [Start, End] range. Nil boundaries are open.
type PeriodFilter struct {
	Start *time.Time
	End   *time.Time
}

// Summary is the flat KPI record shown on the dashboard.
type Summary struct {
	PeriodIncome    decimal.Decimal `json:"period_income"`
	PeriodExpenses  decimal.Decimal `json:"period_expenses"`
	PendingIncome   decimal.Decimal `json:"pending_income"`
	PendingExpenses decimal.Decimal `json:"pending_expenses"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	GoalsProgress   decimal.Decimal `json:"goals_progress"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	HasTransactions bool            `json:"has_transactions"`
}

// Summarize reduces the full transaction history plus goals and investments
// into dashboard KPIs. Period figures count only realized transactions
// (received income, paid expenses) within the filter; pending figures cover
// the not-yet-realized ones in the same period. The current balance is always
// all-time realized income minus all-time realized expenses, regardless of
// the filter.
func Summarize(
	transactions []*entity.Transaction,
	goals []*entity.Goal,
	investments []*entity.Investment,
	filter PeriodFilter,
) Summary {
	s := Summary{
		PeriodIncome:    decimal.Zero,
		PeriodExpenses:  decimal.Zero,
		PendingIncome:   decimal.Zero,
		PendingExpenses: decimal.Zero,
		CurrentBalance:  decimal.Zero,
		GoalsProgress:   decimal.Zero,
		TotalInvested:   decimal.Zero,
		HasTransactions: len(transactions) > 0,
	}

	for _, t := range transactions {
		realized := t.IsRealized()

		// All-time balance ignores the period filter.
		if realized {
			if t.Type == entity.TransactionTypeIncome {
				s.CurrentBalance = s.CurrentBalance.Add(t.Amount)
			} else {
				s.CurrentBalance = s.CurrentBalance.Sub(t.Amount)
			}
		}

		if !inPeriod(t.Date, filter) {
			continue
		}
		switch {
		case t.Type == entity.TransactionTypeIncome && realized:
			s.PeriodIncome = s.PeriodIncome.Add(t.Amount)
		case t.Type == entity.TransactionTypeIncome:
			s.PendingIncome = s.PendingIncome.Add(t.Amount)
		case realized:
			s.PeriodExpenses = s.PeriodExpenses.Add(t.Amount)
		default:
			s.PendingExpenses = s.PendingExpenses.Add(t.Amount)
		}
	}

	s.GoalsProgress = aggregateGoalsProgress(goals)

	for _, inv := range investments {
		s.TotalInvested = s.TotalInvested.Add(inv.Amount)
	}

	return s
}

// aggregateGoalsProgress returns sum(current)/sum(target) as a percentage.
// Zero total target yields 0. The aggregate is intentionally not clamped:
// overshooting goals can push it past 100, unlike per-goal progress.
func aggregateGoalsProgress(goals []*entity.Goal) decimal.Decimal {
	totalTarget := decimal.Zero
	totalCurrent := decimal.Zero
	for _, g := range goals {
		totalTarget = totalTarget.Add(g.TargetAmount)
		totalCurrent = totalCurrent.Add(g.CurrentAmount)
	}
	if totalTarget.IsZero() {
		return decimal.Zero
	}
	return totalCurrent.Div(totalTarget).Mul(decimal.NewFromInt(100))
}

func inPeriod(date time.Time, filter PeriodFilter) bool {
	if filter.Start != nil && date.Before(*filter.Start) {
		return false
	}
	if filter.End != nil && date.After(*filter.End) {
		return false
	}
	return true
}
