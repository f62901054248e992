package report

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
	categoryID *uuid.UUID,
	amount string,
	date time.Time,
	txType entity.TransactionType,
	status entity.TransactionStatus,
) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Amount:     dec(amount),
		Date:       date,
		Type:       txType,
		CategoryID: categoryID,
		Status:     status,
	}
}

func makeCategory(name, color string, catType entity.CategoryType) *entity.Category {
	return &entity.Category{
		ID:    uuid.New(),
		Name:  name,
		Type:  catType,
		Color: color,
	}
}

func TestAggregateExpensesByCategory(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sums paid expenses per category", func(t *testing.T) {
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)
		rent := makeCategory("Rent", "#00FF00", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&food.ID, "50.25", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&food.ID, "19.75", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&rent.ID, "1200.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{food, rent})

		if len(result) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result))
		}
		if result[0].Name != "Food" || !result[0].Value.Equal(dec("70.00")) {
			t.Errorf("expected Food=70.00, got %s=%s", result[0].Name, result[0].Value)
		}
		if result[1].Name != "Rent" || !result[1].Value.Equal(dec("1200.00")) {
			t.Errorf("expected Rent=1200.00, got %s=%s", result[1].Name, result[1].Value)
		}
	})

	t.Run("ignores pending and overdue expenses", func(t *testing.T) {
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&food.ID, "10.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPending),
			makeTransaction(&food.ID, "20.00", date, entity.TransactionTypeExpense, entity.TransactionStatusOverdue),
			makeTransaction(&food.ID, "30.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{food})

		if len(result) != 1 {
			t.Fatalf("expected 1 category, got %d", len(result))
		}
		if !result[0].Value.Equal(dec("30.00")) {
			t.Errorf("expected 30.00, got %s", result[0].Value)
		}
	})

	t.Run("ignores income categories and income transactions", func(t *testing.T) {
		salary := makeCategory("Salary", "#0000FF", entity.CategoryTypeIncome)
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&salary.ID, "5000.00", date, entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction(&food.ID, "30.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{salary, food})

		if len(result) != 1 {
			t.Fatalf("expected 1 category, got %d", len(result))
		}
		if result[0].Name != "Food" {
			t.Errorf("expected Food, got %s", result[0].Name)
		}
	})

	t.Run("drops categories with zero total", func(t *testing.T) {
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)
		travel := makeCategory("Travel", "#00FF00", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&food.ID, "30.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{food, travel})

		if len(result) != 1 {
			t.Fatalf("expected 1 category, got %d", len(result))
		}
		if result[0].Name != "Food" {
			t.Errorf("expected Food, got %s", result[0].Name)
		}
	})

	t.Run("uses stored color when present", func(t *testing.T) {
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&food.ID, "30.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{food})

		if result[0].Color != "#FF0000" {
			t.Errorf("expected #FF0000, got %s", result[0].Color)
		}
	})

	t.Run("assigns fallback color by name-sorted position", func(t *testing.T) {
		banana := makeCategory("Banana", "", entity.CategoryTypeExpense)
		apple := makeCategory("Apple", "", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&banana.ID, "10.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&apple.ID, "20.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		first := AggregateExpensesByCategory(transactions, []*entity.Category{banana, apple})
		second := AggregateExpensesByCategory(transactions, []*entity.Category{apple, banana})

		// Apple sorts before Banana regardless of input order.
		if first[0].Name != "Apple" || first[0].Color != FallbackColor(0) {
			t.Errorf("expected Apple with %s, got %s with %s", FallbackColor(0), first[0].Name, first[0].Color)
		}
		if first[1].Name != "Banana" || first[1].Color != FallbackColor(1) {
			t.Errorf("expected Banana with %s, got %s with %s", FallbackColor(1), first[1].Name, first[1].Color)
		}
		for i := range first {
			if first[i].Color != second[i].Color {
				t.Errorf("colors must not depend on input order: %s vs %s", first[i].Color, second[i].Color)
			}
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		result := AggregateExpensesByCategory(nil, nil)
		if result == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(result) != 0 {
			t.Errorf("expected empty slice, got %d entries", len(result))
		}
	})

	t.Run("category totals match the sum of paid expenses", func(t *testing.T) {
		food := makeCategory("Food", "#FF0000", entity.CategoryTypeExpense)
		rent := makeCategory("Rent", "#00FF00", entity.CategoryTypeExpense)

		transactions := []*entity.Transaction{
			makeTransaction(&food.ID, "12.34", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&food.ID, "55.55", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&rent.ID, "800.00", date, entity.TransactionTypeExpense, entity.TransactionStatusPaid),
			makeTransaction(&rent.ID, "1.01", date, entity.TransactionTypeExpense, entity.TransactionStatusPending),
		}

		result := AggregateExpensesByCategory(transactions, []*entity.Category{food, rent})

		total := decimal.Zero
		for _, r := range result {
			total = total.Add(r.Value)
		}
		if !total.Equal(dec("867.89")) {
			t.Errorf("expected conserved total 867.89, got %s", total)
		}
	})
}

func TestAggregateBalanceEvolution(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	t.Run("emits exactly windowMonths entries in ascending order", func(t *testing.T) {
		points := AggregateBalanceEvolution(nil, 6, now)

		if len(points) != 6 {
			t.Fatalf("expected 6 points, got %d", len(points))
		}
		expectedFirst := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		if !points[0].Month.Equal(expectedFirst) {
			t.Errorf("expected first month %s, got %s", expectedFirst, points[0].Month)
		}
		expectedLast := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		if !points[5].Month.Equal(expectedLast) {
			t.Errorf("expected last month %s, got %s", expectedLast, points[5].Month)
		}
		for i := 1; i < len(points); i++ {
			if !points[i].Month.After(points[i-1].Month) {
				t.Errorf("months not strictly ascending at index %d", i)
			}
		}
	})

	t.Run("zero-fills months without activity", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction(nil, "100.00", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeIncome, entity.TransactionStatusReceived),
		}

		points := AggregateBalanceEvolution(transactions, 3, now)

		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}
		// April has the income, May and June are zero activity but carry the balance.
		if !points[0].Income.Equal(dec("100.00")) {
			t.Errorf("expected April income 100.00, got %s", points[0].Income)
		}
		if !points[1].Income.IsZero() || !points[1].Expenses.IsZero() {
			t.Errorf("expected May zero-filled, got income=%s expenses=%s", points[1].Income, points[1].Expenses)
		}
		if !points[2].Balance.Equal(dec("100.00")) {
			t.Errorf("expected June balance 100.00, got %s", points[2].Balance)
		}
	})

	t.Run("accumulates running balance chronologically", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction(nil, "1000.00", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction(nil, "300.00", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		points := AggregateBalanceEvolution(transactions, 2, now)

		if !points[0].Balance.Equal(dec("1000.00")) {
			t.Errorf("expected May balance 1000.00, got %s", points[0].Balance)
		}
		if !points[1].Balance.Equal(dec("700.00")) {
			t.Errorf("expected June balance 700.00, got %s", points[1].Balance)
		}
	})

	t.Run("history before the window seeds the opening balance", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction(nil, "500.00", time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeIncome, entity.TransactionStatusReceived),
			makeTransaction(nil, "100.00", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeExpense, entity.TransactionStatusPaid),
		}

		points := AggregateBalanceEvolution(transactions, 3, now)

		if !points[0].Balance.Equal(dec("500.00")) {
			t.Errorf("expected opening balance 500.00 in April, got %s", points[0].Balance)
		}
		if !points[2].Balance.Equal(dec("400.00")) {
			t.Errorf("expected June balance 400.00, got %s", points[2].Balance)
		}
	})

	t.Run("ignores pending income and pending expenses", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction(nil, "100.00", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeIncome, entity.TransactionStatusPending),
			makeTransaction(nil, "50.00", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
				entity.TransactionTypeExpense, entity.TransactionStatusOverdue),
		}

		points := AggregateBalanceEvolution(transactions, 1, now)

		if !points[0].Income.IsZero() || !points[0].Expenses.IsZero() {
			t.Errorf("expected unrealized transactions to be ignored, got income=%s expenses=%s",
				points[0].Income, points[0].Expenses)
		}
	})

	t.Run("window spans year boundaries", func(t *testing.T) {
		january := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

		points := AggregateBalanceEvolution(nil, 3, january)

		expected := []time.Time{
			time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		for i, want := range expected {
			if !points[i].Month.Equal(want) {
				t.Errorf("expected month %s at index %d, got %s", want, i, points[i].Month)
			}
		}
	})

	t.Run("window below one month yields empty slice", func(t *testing.T) {
		points := AggregateBalanceEvolution(nil, 0, now)
		if len(points) != 0 {
			t.Errorf("expected empty slice, got %d points", len(points))
		}
	})
}

func TestFallbackColor(t *testing.T) {
	// Same index always yields the same color.
	if FallbackColor(3) != FallbackColor(3) {
		t.Error("expected deterministic color for the same index")
	}

	// Indices past the palette wrap around.
	if FallbackColor(0) != FallbackColor(len(fallbackPalette)) {
		t.Error("expected palette to wrap around")
	}
}
