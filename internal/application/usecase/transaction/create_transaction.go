// Package transaction contains transaction-related use cases.
package transaction

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

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Status      entity.TransactionStatus
	IsRecurring bool
	DueDate     *time.Time
	ExpenseType *entity.ExpenseType
	Tags        []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Description, input.Amount, input.Type, input.Status, input.ExpenseType); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := uc.checkCategory(ctx, *input.CategoryID, input.UserID, input.Type); err != nil {
			return nil, err
		}
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Description,
		input.Amount,
		input.Date,
		input.Type,
		input.CategoryID,
		input.Status,
		input.IsRecurring,
		input.DueDate,
		input.ExpenseType,
		input.Tags,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// checkCategory verifies the category exists, belongs to the user, and has
// the same income/expense type as the transaction.
func (uc *CreateTransactionUseCase) checkCategory(
	ctx context.Context,
	categoryID, userID uuid.UUID,
	transactionType entity.TransactionType,
) error {
	return checkCategoryForTransaction(ctx, uc.categoryRepo, categoryID, userID, transactionType)
}

func checkCategoryForTransaction(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	categoryID, userID uuid.UUID,
	transactionType entity.TransactionType,
) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if category.UserID != userID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}

	if string(category.Type) != string(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryTypeMismatch,
			"category type does not match transaction type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return nil
}

func validateTransactionFields(
	description string,
	amount decimal.Decimal,
	transactionType entity.TransactionType,
	status entity.TransactionStatus,
	expenseType *entity.ExpenseType,
) error {
	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !entity.ValidStatus(transactionType, status) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"income status must be 'pending' or 'received'; expense status must be 'pending', 'paid', or 'overdue'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}
	if expenseType != nil {
		if transactionType != entity.TransactionTypeExpense {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidExpenseType,
				"expense type is only valid on expense transactions",
				domainerror.ErrInvalidExpenseType,
			)
		}
		if *expenseType != entity.ExpenseTypeFixed && *expenseType != entity.ExpenseTypeVariable {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidExpenseType,
				"expense type must be 'fixed' or 'variable'",
				domainerror.ErrInvalidExpenseType,
			)
		}
	}
	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
