package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneywise/backend/internal/application/adapter"
	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// DefaultWindowMonths is the balance evolution window used when the caller
// does not request one.
const DefaultWindowMonths = 12

// MaxWindowMonths caps the balance evolution window.
const MaxWindowMonths = 60

// GetChartsInput represents the input for building report charts.
type GetChartsInput struct {
	UserID       uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	WindowMonths int
	Now          time.Time
}

// GetChartsOutput represents the output of building report charts.
type GetChartsOutput struct {
	ExpensesByCategory []CategoryExpense `json:"expenses_by_category"`
	BalanceEvolution   []MonthPoint      `json:"balance_evolution"`
	HasData            bool              `json:"has_data"`
}

// GetChartsUseCase loads a user's records and aggregates them into chart series.
type GetChartsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGetChartsUseCase creates a new GetChartsUseCase instance.
func NewGetChartsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetChartsUseCase {
	return &GetChartsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute aggregates the user's transactions into the category rollup and the
// monthly balance evolution series. The optional date filter applies only to
// the category rollup; the balance evolution always spans the rolling window
// ending at input.Now.
func (uc *GetChartsUseCase) Execute(
	ctx context.Context,
	input GetChartsInput,
) (*GetChartsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	windowMonths := input.WindowMonths
	if windowMonths == 0 {
		windowMonths = DefaultWindowMonths
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	filtered := transactions
	if input.StartDate != nil || input.EndDate != nil {
		filtered = filterByDate(transactions, input.StartDate, input.EndDate)
	}

	return &GetChartsOutput{
		ExpensesByCategory: AggregateExpensesByCategory(filtered, categories),
		BalanceEvolution:   AggregateBalanceEvolution(transactions, windowMonths, now),
		HasData:            len(transactions) > 0,
	}, nil
}

func (uc *GetChartsUseCase) validateInput(input GetChartsInput) error {
	if input.WindowMonths < 0 || input.WindowMonths > MaxWindowMonths {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidWindowMonths,
			fmt.Sprintf("window_months must be between 1 and %d", MaxWindowMonths),
			domainerror.ErrInvalidWindowMonths,
		)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// filterByDate keeps transactions whose date falls within the inclusive
// [start, end] range; nil boundaries are open.
func filterByDate(transactions []*entity.Transaction, start, end *time.Time) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
