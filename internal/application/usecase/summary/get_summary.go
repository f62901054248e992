package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneywise/backend/internal/application/adapter"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// GetSummaryInput represents the input for computing the dashboard summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the output of computing the dashboard summary.
type GetSummaryOutput struct {
	Summary
}

// GetSummaryUseCase loads a user's records and reduces them into dashboard KPIs.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	investmentRepo  adapter.InvestmentRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	investmentRepo adapter.InvestmentRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		investmentRepo:  investmentRepo,
	}
}

// Execute computes the dashboard summary for the given user and period.
func (uc *GetSummaryUseCase) Execute(
	ctx context.Context,
	input GetSummaryInput,
) (*GetSummaryOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	result := Summarize(transactions, goals, investments, PeriodFilter{
		Start: input.StartDate,
		End:   input.EndDate,
	})

	return &GetSummaryOutput{Summary: result}, nil
}
