package investment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/moneywise/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSimulateInvestmentUseCase_Execute(t *testing.T) {
	uc := NewSimulateInvestmentUseCase()
	ctx := context.Background()

	t.Run("one year without contributions", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateInput{
			Principal:           dec("1000"),
			AnnualRatePercent:   dec("10"),
			Years:               1,
			MonthlyContribution: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Projections) != 1 {
			t.Fatalf("expected 1 projection, got %d", len(out.Projections))
		}
		p := out.Projections[0]
		if !p.Amount.Equal(dec("1100.00")) {
			t.Errorf("expected amount 1100.00, got %s", p.Amount)
		}
		if !p.TotalContributed.Equal(dec("1000.00")) {
			t.Errorf("expected contributed 1000.00, got %s", p.TotalContributed)
		}
		if !p.TotalReturn.Equal(dec("100.00")) {
			t.Errorf("expected return 100.00, got %s", p.TotalReturn)
		}
	})

	t.Run("one year with monthly contributions", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateInput{
			Principal:           dec("1000"),
			AnnualRatePercent:   dec("10"),
			Years:               1,
			MonthlyContribution: dec("100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := out.Projections[0]
		if !p.Amount.Equal(dec("2420.00")) {
			t.Errorf("expected amount 2420.00, got %s", p.Amount)
		}
		if !p.TotalContributed.Equal(dec("2200.00")) {
			t.Errorf("expected contributed 2200.00, got %s", p.TotalContributed)
		}
		if !p.TotalReturn.Equal(dec("220.00")) {
			t.Errorf("expected return 220.00, got %s", p.TotalReturn)
		}
	})

	t.Run("two years compound yearly", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateInput{
			Principal:           dec("1000"),
			AnnualRatePercent:   dec("10"),
			Years:               2,
			MonthlyContribution: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Projections) != 2 {
			t.Fatalf("expected 2 projections, got %d", len(out.Projections))
		}
		if !out.Projections[0].Amount.Equal(dec("1100.00")) {
			t.Errorf("expected year 1 amount 1100.00, got %s", out.Projections[0].Amount)
		}
		if !out.Projections[1].Amount.Equal(dec("1210.00")) {
			t.Errorf("expected year 2 amount 1210.00, got %s", out.Projections[1].Amount)
		}
	})

	t.Run("zero rate grows by contributions only", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateInput{
			Principal:           dec("500"),
			AnnualRatePercent:   decimal.Zero,
			Years:               3,
			MonthlyContribution: dec("10"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := out.Projections[2]
		if !last.Amount.Equal(dec("860.00")) {
			t.Errorf("expected amount 860.00, got %s", last.Amount)
		}
		if !last.TotalReturn.IsZero() {
			t.Errorf("expected zero return, got %s", last.TotalReturn)
		}
	})

	t.Run("unrounded amount is carried between years", func(t *testing.T) {
		// 100 * 1.015 = 101.5, year 2 compounds on the exact carry.
		out, err := uc.Execute(ctx, SimulateInput{
			Principal:           dec("100"),
			AnnualRatePercent:   dec("1.5"),
			Years:               2,
			MonthlyContribution: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Projections[1].Amount.Equal(dec("103.02")) {
			t.Errorf("expected year 2 amount 103.02, got %s", out.Projections[1].Amount)
		}
	})

	t.Run("rejects invalid parameters with typed errors", func(t *testing.T) {
		cases := []struct {
			name  string
			input SimulateInput
			code  domainerror.InvestmentErrorCode
		}{
			{
				name: "zero years",
				input: SimulateInput{
					Principal: dec("1000"), AnnualRatePercent: dec("10"), Years: 0,
				},
				code: domainerror.ErrCodeInvalidSimulationYears,
			},
			{
				name: "negative principal",
				input: SimulateInput{
					Principal: dec("-1"), AnnualRatePercent: dec("10"), Years: 1,
				},
				code: domainerror.ErrCodeInvalidSimulationPrincipal,
			},
			{
				name: "negative rate",
				input: SimulateInput{
					Principal: dec("1000"), AnnualRatePercent: dec("-10"), Years: 1,
				},
				code: domainerror.ErrCodeInvalidSimulationRate,
			},
			{
				name: "negative contribution",
				input: SimulateInput{
					Principal: dec("1000"), AnnualRatePercent: dec("10"), Years: 1,
					MonthlyContribution: dec("-5"),
				},
				code: domainerror.ErrCodeInvalidSimulationContribution,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				if err == nil {
					t.Fatal("expected error")
				}
				var invErr *domainerror.InvestmentError
				if !errors.As(err, &invErr) {
					t.Fatalf("expected InvestmentError, got %T", err)
				}
				if invErr.Code != tc.code {
					t.Errorf("expected code %s, got %s", tc.code, invErr.Code)
				}
			})
		}
	})
}
