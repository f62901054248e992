// Package report contains report aggregation use cases.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/domain/entity"
)

// CategoryExpense represents the total spent in one expense category.
type CategoryExpense struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// MonthPoint represents one month of the balance evolution series.
type MonthPoint struct {
	Month    time.Time       `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// AggregateExpensesByCategory sums paid expense transactions per category.
// Income categories and categories with no paid expenses are dropped.
// Categories stored without a color get a deterministic palette color based
// on their position in the name-sorted category list.
func AggregateExpensesByCategory(
	transactions []*entity.Transaction,
	categories []*entity.Category,
) []CategoryExpense {
	expenseCategories := make([]*entity.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == entity.CategoryTypeExpense {
			expenseCategories = append(expenseCategories, c)
		}
	}
	sort.Slice(expenseCategories, func(i, j int) bool {
		return expenseCategories[i].Name < expenseCategories[j].Name
	})

	totals := make(map[uuid.UUID]decimal.Decimal, len(expenseCategories))
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || t.Status != entity.TransactionStatusPaid {
			continue
		}
		if t.CategoryID == nil {
			continue
		}
		totals[*t.CategoryID] = totals[*t.CategoryID].Add(t.Amount)
	}

	result := make([]CategoryExpense, 0, len(expenseCategories))
	for i, c := range expenseCategories {
		total, ok := totals[c.ID]
		if !ok || total.IsZero() {
			continue
		}
		color := c.Color
		if color == "" {
			color = FallbackColor(i)
		}
		result = append(result, CategoryExpense{
			Name:  c.Name,
			Value: total,
			Color: color,
		})
	}
	return result
}

// AggregateBalanceEvolution buckets transactions by calendar month and emits
// one point per month of the rolling window ending at now's month. Income
// counts received income, expenses count paid expenses, and the balance is
// accumulated chronologically over the full history so months before the
// window still contribute to the opening balance. Months with no activity are
// zero-filled rather than omitted.
func AggregateBalanceEvolution(
	transactions []*entity.Transaction,
	windowMonths int,
	now time.Time,
) []MonthPoint {
	if windowMonths < 1 {
		return []MonthPoint{}
	}

	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make(map[time.Time]*bucket)
	for _, t := range transactions {
		key := monthStart(t.Date)
		b := buckets[key]
		if b == nil {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		switch {
		case t.Type == entity.TransactionTypeIncome && t.Status == entity.TransactionStatusReceived:
			b.income = b.income.Add(t.Amount)
		case t.Type == entity.TransactionTypeExpense && t.Status == entity.TransactionStatusPaid:
			b.expenses = b.expenses.Add(t.Amount)
		}
	}

	windowEnd := monthStart(now)
	windowStart := windowEnd.AddDate(0, -(windowMonths - 1), 0)

	// History before the window seeds the running balance.
	balance := decimal.Zero
	for key, b := range buckets {
		if key.Before(windowStart) {
			balance = balance.Add(b.income).Sub(b.expenses)
		}
	}

	points := make([]MonthPoint, 0, windowMonths)
	for month := windowStart; !month.After(windowEnd); month = month.AddDate(0, 1, 0) {
		income := decimal.Zero
		expenses := decimal.Zero
		if b, ok := buckets[month]; ok {
			income = b.income
			expenses = b.expenses
		}
		balance = balance.Add(income).Sub(expenses)
		points = append(points, MonthPoint{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Balance:  balance,
		})
	}
	return points
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
