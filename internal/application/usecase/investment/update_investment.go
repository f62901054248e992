package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/application/adapter"
	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// UpdateInvestmentInput represents the input for investment update.
type UpdateInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	Name         *string                // Optional
	Type         *entity.InvestmentType // Optional
	Amount       *decimal.Decimal       // Optional
	InterestRate *decimal.Decimal       // Optional
	StartDate    *time.Time             // Optional
	MaturityDate *time.Time             // Optional
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment update.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvestmentNotFound,
				"investment not found",
				domainerror.ErrInvestmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	if investment.UserID != input.UserID {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeUnauthorizedInvestment,
			"not authorized to modify this investment",
			domainerror.ErrUnauthorizedInvestmentAccess,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeMissingInvestmentFields,
				"name must not be empty",
				nil,
			)
		}
		investment.Name = *input.Name
	}

	if input.Type != nil {
		if !entity.ValidInvestmentType(*input.Type) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInvestmentType,
				"type must be 'fixed_income', 'stocks', 'funds', 'crypto', or 'other'",
				domainerror.ErrInvalidInvestmentType,
			)
		}
		investment.Type = *input.Type
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInvestmentAmount,
				"amount must not be negative",
				domainerror.ErrInvalidInvestmentAmount,
			)
		}
		investment.Amount = *input.Amount
	}

	if input.InterestRate != nil {
		if input.InterestRate.IsNegative() {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInterestRate,
				"interest rate must not be negative",
				domainerror.ErrInvalidInterestRate,
			)
		}
		investment.InterestRate = *input.InterestRate
	}

	if input.StartDate != nil {
		investment.StartDate = *input.StartDate
	}

	if input.MaturityDate != nil {
		investment.MaturityDate = input.MaturityDate
	}

	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{Investment: investment}, nil
}
