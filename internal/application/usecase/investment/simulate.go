// Package investment contains investment-related use cases.
package investment

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// SimulateInput represents the parameters of a compound-growth projection.
// The simulator works on ad-hoc parameters, not stored investments.
type SimulateInput struct {
	Principal           decimal.Decimal
	AnnualRatePercent   decimal.Decimal
	Years               int
	MonthlyContribution decimal.Decimal
}

// YearProjection represents one projected year of the simulation.
type YearProjection struct {
	Year             int             `json:"year"`
	Amount           decimal.Decimal `json:"amount"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	TotalReturn      decimal.Decimal `json:"total_return"`
}

// SimulateOutput represents the output of the simulation.
type SimulateOutput struct {
	Projections []YearProjection `json:"projections"`
}

// SimulateInvestmentUseCase projects investment growth year by year with
// annual compounding and flat monthly contributions.
type SimulateInvestmentUseCase struct{}

// NewSimulateInvestmentUseCase creates a new SimulateInvestmentUseCase instance.
func NewSimulateInvestmentUseCase() *SimulateInvestmentUseCase {
	return &SimulateInvestmentUseCase{}
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Execute runs the projection. Each year the twelve monthly contributions are
// added up front, then the annual rate is applied once. The running amount is
// carried between years at full precision; only the emitted fields are
// rounded to two decimals.
func (uc *SimulateInvestmentUseCase) Execute(
	ctx context.Context,
	input SimulateInput,
) (*SimulateOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	growthFactor := decimal.NewFromInt(1).Add(input.AnnualRatePercent.Div(hundred))
	yearlyContribution := input.MonthlyContribution.Mul(twelve)

	current := input.Principal
	projections := make([]YearProjection, 0, input.Years)
	for year := 1; year <= input.Years; year++ {
		current = current.Add(yearlyContribution).Mul(growthFactor)

		contributed := input.Principal.Add(yearlyContribution.Mul(decimal.NewFromInt(int64(year))))
		projections = append(projections, YearProjection{
			Year:             year,
			Amount:           current.Round(2),
			TotalContributed: contributed.Round(2),
			TotalReturn:      current.Sub(contributed).Round(2),
		})
	}

	return &SimulateOutput{Projections: projections}, nil
}

func (uc *SimulateInvestmentUseCase) validateInput(input SimulateInput) error {
	if input.Years < 1 {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidSimulationYears,
			"years must be at least 1",
			domainerror.ErrInvalidSimulationYears,
		)
	}
	if input.Principal.IsNegative() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidSimulationPrincipal,
			"principal must not be negative",
			domainerror.ErrInvalidSimulationPrincipal,
		)
	}
	if input.AnnualRatePercent.IsNegative() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidSimulationRate,
			"annual rate must not be negative",
			domainerror.ErrInvalidSimulationRate,
		)
	}
	if input.MonthlyContribution.IsNegative() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidSimulationContribution,
			"monthly contribution must not be negative",
			domainerror.ErrInvalidSimulationContribution,
		)
	}
	return nil
}
