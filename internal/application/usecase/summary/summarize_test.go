package summary

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func makeTransaction(
	amount string,
	date time.Time,
	txType entity.TransactionType,
	status entity.TransactionStatus,
) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: dec(amount),
		Date:   date,
		Type:   txType,
		Status: status,
	}
}

func makeGoal(target, current string) *entity.Goal {
	return &entity.Goal{
		ID:            uuid.New(),
		Name:          "goal",
		TargetAmount:  dec(target),
		CurrentAmount: dec(current),
	}
}

func TestSummarize(t *testing.T) {
	june := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("counts only realized transactions in period figures", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("1000.00", june, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("500.00", june, entity.TransactionTypeIncome, entity.TransactionStatusPending),
			makeTransaction("200.00", june, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction("80.00", june, entity.TransactionTypeExpense, entity.TransactionStatusPending),
			makeTransaction("40.00", june, entity.TransactionTypeExpense, entity.TransactionStatusOverdue),
		}

		s := Summarize(transactions, nil, nil, PeriodFilter{})

		if !s.PeriodIncome.Equal(dec("1000.00")) {
			t.Errorf("expected period income 1000.00, got %s", s.PeriodIncome)
		}
		if !s.PeriodExpenses.Equal(dec("200.00")) {
			t.Errorf("expected period expenses 200.00, got %s", s.PeriodExpenses)
		}
		if !s.PendingIncome.Equal(dec("500.00")) {
			t.Errorf("expected pending income 500.00, got %s", s.PendingIncome)
		}
		if !s.PendingExpenses.Equal(dec("120.00")) {
			t.Errorf("expected pending expenses 120.00, got %s", s.PendingExpenses)
		}
	})

	t.Run("current balance is all-time and ignores the period filter", func(t *testing.T) {
		march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		transactions := []*entity.Transaction{
			makeTransaction("2000.00", march, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("300.00", june, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		s := Summarize(transactions, nil, nil, PeriodFilter{Start: &start, End: &end})

		if !s.CurrentBalance.Equal(dec("1700.00")) {
			t.Errorf("expected balance 1700.00, got %s", s.CurrentBalance)
		}
		// March income is outside the filtered period.
		if !s.PeriodIncome.IsZero() {
			t.Errorf("expected period income 0, got %s", s.PeriodIncome)
		}
		if !s.PeriodExpenses.Equal(dec("300.00")) {
			t.Errorf("expected period expenses 300.00, got %s", s.PeriodExpenses)
		}
	})

	t.Run("balance identity holds without a filter", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("1234.56", june, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("234.56", june, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction("10.00", june, entity.TransactionTypeExpense, entity.TransactionStatusPending),
		}

		s := Summarize(transactions, nil, nil, PeriodFilter{})

		if !s.CurrentBalance.Equal(s.PeriodIncome.Sub(s.PeriodExpenses)) {
			t.Errorf("expected balance %s to equal income-expenses %s",
				s.CurrentBalance, s.PeriodIncome.Sub(s.PeriodExpenses))
		}
	})

	t.Run("period filter boundaries are inclusive", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		transactions := []*entity.Transaction{
			makeTransaction("10.00", start, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("20.00", end, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("40.00", end.AddDate(0, 0, 1), entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction("80.00", start.AddDate(0, 0, -1), entity.TransactionTypeIncome, entity.TransactionStatusReceived),
		}

		s := Summarize(transactions, nil, nil, PeriodFilter{Start: &start, End: &end})

		if !s.PeriodIncome.Equal(dec("30.00")) {
			t.Errorf("expected period income 30.00 (both boundaries in), got %s", s.PeriodIncome)
		}
	})

	t.Run("goals progress aggregates across goals without clamping", func(t *testing.T) {
		goals := []*entity.Goal{
			makeGoal("1000.00", "1500.00"),
			makeGoal("1000.00", "1000.00"),
		}

		s := Summarize(nil, goals, nil, PeriodFilter{})

		if !s.GoalsProgress.Equal(dec("125")) {
			t.Errorf("expected aggregate progress 125, got %s", s.GoalsProgress)
		}
	})

	t.Run("goals progress is zero when total target is zero", func(t *testing.T) {
		goals := []*entity.Goal{makeGoal("0", "500.00")}

		s := Summarize(nil, goals, nil, PeriodFilter{})

		if !s.GoalsProgress.IsZero() {
			t.Errorf("expected progress 0, got %s", s.GoalsProgress)
		}
	})

	t.Run("total invested sums all investments unfiltered", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		investments := []*entity.Investment{
			{ID: uuid.New(), Amount: dec("5000.00")},
			{ID: uuid.New(), Amount: dec("2500.50")},
		}

		s := Summarize(nil, nil, investments, PeriodFilter{Start: &start})

		if !s.TotalInvested.Equal(dec("7500.50")) {
			t.Errorf("expected total invested 7500.50, got %s", s.TotalInvested)
		}
	})

	t.Run("distinguishes no data from all-zero", func(t *testing.T) {
		empty := Summarize(nil, nil, nil, PeriodFilter{})
		if empty.HasTransactions {
			t.Error("expected HasTransactions=false for empty input")
		}

		zeroActivity := Summarize([]*entity.Transaction{
			makeTransaction("10.00", june, entity.TransactionTypeIncome, entity.TransactionStatusPending),
		}, nil, nil, PeriodFilter{})
		if !zeroActivity.HasTransactions {
			t.Error("expected HasTransactions=true when transactions exist")
		}
		if !zeroActivity.PeriodIncome.IsZero() {
			t.Errorf("expected zero realized income, got %s", zeroActivity.PeriodIncome)
		}
	})
}

func TestGoalProgressClamping(t *testing.T) {
	// Per-goal progress is clamped to [0,100]; the aggregate is not.
	overshoot := makeGoal("100.00", "250.00")

	if !overshoot.Progress().Equal(dec("100")) {
		t.Errorf("expected per-goal progress clamped to 100, got %s", overshoot.Progress())
	}

	s := Summarize(nil, []*entity.Goal{overshoot}, nil, PeriodFilter{})
	if !s.GoalsProgress.Equal(dec("250")) {
		t.Errorf("expected unclamped aggregate 250, got %s", s.GoalsProgress)
	}
}
