package transaction

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

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Description   *string                   // Optional
	Amount        *decimal.Decimal          // Optional
	Date          *time.Time                // Optional
	CategoryID    *uuid.UUID                // Optional
	ClearCategory bool                      // True removes the category
	Status        *entity.TransactionStatus // Optional
	IsRecurring   *bool                     // Optional
	DueDate       *time.Time                // Optional
	ExpenseType   *entity.ExpenseType       // Optional
	Tags          []string                  // Optional, nil leaves tags untouched
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update. The transaction type is immutable;
// flipping income to expense would invalidate the status and category checks
// done at creation.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				"description is required",
				nil,
			)
		}
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		transaction.Description = *input.Description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if input.ClearCategory {
		transaction.CategoryID = nil
	} else if input.CategoryID != nil {
		if err := checkCategoryForTransaction(ctx, uc.categoryRepo, *input.CategoryID, input.UserID, transaction.Type); err != nil {
			return nil, err
		}
		transaction.CategoryID = input.CategoryID
	}

	if input.Status != nil {
		if !entity.ValidStatus(transaction.Type, *input.Status) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionStatus,
				"income status must be 'pending' or 'received'; expense status must be 'pending', 'paid', or 'overdue'",
				domainerror.ErrInvalidTransactionStatus,
			)
		}
		transaction.Status = *input.Status
	}

	if input.IsRecurring != nil {
		transaction.IsRecurring = *input.IsRecurring
	}

	if input.DueDate != nil {
		transaction.DueDate = input.DueDate
	}

	if input.ExpenseType != nil {
		if transaction.Type != entity.TransactionTypeExpense {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidExpenseType,
				"expense type is only valid on expense transactions",
				domainerror.ErrInvalidExpenseType,
			)
		}
		if *input.ExpenseType != entity.ExpenseTypeFixed && *input.ExpenseType != entity.ExpenseTypeVariable {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidExpenseType,
				"expense type must be 'fixed' or 'variable'",
				domainerror.ErrInvalidExpenseType,
			)
		}
		transaction.ExpenseType = input.ExpenseType
	}

	if input.Tags != nil {
		transaction.Tags = input.Tags
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
