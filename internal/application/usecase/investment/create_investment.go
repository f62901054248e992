package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/application/adapter"
	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID       uuid.UUID
	Name         string
	Type         entity.InvestmentType
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	StartDate    time.Time
	MaturityDate *time.Time
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			"name is required",
			nil,
		)
	}
	if !entity.ValidInvestmentType(input.Type) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentType,
			"type must be 'fixed_income', 'stocks', 'funds', 'crypto', or 'other'",
			domainerror.ErrInvalidInvestmentType,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"amount must not be negative",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}
	if input.InterestRate.IsNegative() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must not be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	investment := entity.NewInvestment(
		input.UserID,
		input.Name,
		input.Type,
		input.Amount,
		input.InterestRate,
		input.StartDate,
		input.MaturityDate,
	)

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{Investment: investment}, nil
}
