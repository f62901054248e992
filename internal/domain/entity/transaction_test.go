package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidStatus(t *testing.T) {
	cases := []struct {
		name     string
		txnType  TransactionType
		status   TransactionStatus
		expected bool
	}{
		{"income pending", TransactionTypeIncome, TransactionStatusPending, true},
		{"income received", TransactionTypeIncome, TransactionStatusReceived, true},
		{"income paid", TransactionTypeIncome, TransactionStatusPaid, false},
		{"income overdue", TransactionTypeIncome, TransactionStatusOverdue, false},
		{"expense pending", TransactionTypeExpense, TransactionStatusPending, true},
		{"expense paid", TransactionTypeExpense, TransactionStatusPaid, true},
		{"expense overdue", TransactionTypeExpense, TransactionStatusOverdue, true},
		{"expense received", TransactionTypeExpense, TransactionStatusReceived, false},
		{"unknown type", TransactionType("transfer"), TransactionStatusPaid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidStatus(tc.txnType, tc.status); got != tc.expected {
				t.Errorf("ValidStatus(%q, %q) = %v, want %v", tc.txnType, tc.status, got, tc.expected)
			}
		})
	}
}

func TestTransactionIsRealized(t *testing.T) {
	t.Run("received income counts", func(t *testing.T) {
		txn := &Transaction{Type: TransactionTypeIncome, Status: TransactionStatusReceived}
		if !txn.IsRealized() {
			t.Error("expected received income to be realized")
		}
	})

	t.Run("pending income does not count", func(t *testing.T) {
		txn := &Transaction{Type: TransactionTypeIncome, Status: TransactionStatusPending}
		if txn.IsRealized() {
			t.Error("expected pending income to not be realized")
		}
	})

	t.Run("paid expense counts", func(t *testing.T) {
		txn := &Transaction{Type: TransactionTypeExpense, Status: TransactionStatusPaid}
		if !txn.IsRealized() {
			t.Error("expected paid expense to be realized")
		}
	})

	t.Run("overdue expense does not count", func(t *testing.T) {
		txn := &Transaction{Type: TransactionTypeExpense, Status: TransactionStatusOverdue}
		if txn.IsRealized() {
			t.Error("expected overdue expense to not be realized")
		}
	})
}

func TestGoalProgress(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("invalid decimal %q: %v", s, err)
		}
		return d
	}

	t.Run("partial progress", func(t *testing.T) {
		g := &Goal{TargetAmount: dec("1000"), CurrentAmount: dec("250")}
		if got := g.Progress(); !got.Equal(dec("25")) {
			t.Errorf("expected 25, got %s", got)
		}
	})

	t.Run("clamped at one hundred", func(t *testing.T) {
		g := &Goal{TargetAmount: dec("1000"), CurrentAmount: dec("2500")}
		if got := g.Progress(); !got.Equal(dec("100")) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("negative current clamps to zero", func(t *testing.T) {
		g := &Goal{TargetAmount: dec("1000"), CurrentAmount: dec("-50")}
		if got := g.Progress(); !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})

	t.Run("zero target yields zero", func(t *testing.T) {
		g := &Goal{TargetAmount: decimal.Zero, CurrentAmount: dec("500")}
		if got := g.Progress(); !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}
