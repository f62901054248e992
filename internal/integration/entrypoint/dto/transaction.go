// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// ParseAmount parses a wire amount string into a decimal. Amounts always
// cross the API as strings; a non-numeric value is a client error, never
// silently coerced to zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeUnparsableAmount,
			"amount is not a valid decimal number",
			domainerror.ErrUnparsableAmount,
		)
	}
	return amount, nil
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"required,min=1,max=255"`
	Amount      string   `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string  `json:"category_id,omitempty"`
	Status      string   `json:"status" binding:"required,oneof=pending paid received overdue"`
	IsRecurring bool     `json:"is_recurring,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	ExpenseType *string  `json:"expense_type,omitempty" binding:"omitempty,oneof=fixed variable"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date          *string  `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *string  `json:"amount,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=pending paid received overdue"`
	IsRecurring   *bool    `json:"is_recurring,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
	ExpenseType   *string  `json:"expense_type,omitempty" binding:"omitempty,oneof=fixed variable"`
	Tags          []string `json:"tags,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Status      string                       `json:"status"`
	IsRecurring bool                         `json:"is_recurring"`
	DueDate     *string                      `json:"due_date,omitempty"`
	ExpenseType *string                      `json:"expense_type,omitempty"`
	Tags        []string                     `json:"tags"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated realized totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction, category *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.StringFixed(2),
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		IsRecurring: txn.IsRecurring,
		Tags:        txn.Tags,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if response.Tags == nil {
		response.Tags = []string{}
	}

	if txn.CategoryID != nil {
		categoryIDStr := txn.CategoryID.String()
		response.CategoryID = &categoryIDStr
	}

	if txn.DueDate != nil {
		dueDateStr := txn.DueDate.Format("2006-01-02")
		response.DueDate = &dueDateStr
	}

	if txn.ExpenseType != nil {
		expenseTypeStr := string(*txn.ExpenseType)
		response.ExpenseType = &expenseTypeStr
	}

	if category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    category.ID.String(),
			Name:  category.Name,
			Color: category.Color,
			Type:  string(category.Type),
		}
	}

	return response
}

// ToTransactionListResponse converts transactions with categories plus
// pagination and totals into a TransactionListResponse.
func ToTransactionListResponse(
	transactions []*entity.TransactionWithCategory,
	page, limit int,
	total int64,
	totalPages int,
	incomeTotal, expenseTotal, netTotal decimal.Decimal,
) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, twc := range transactions {
		responses[i] = ToTransactionResponse(twc.Transaction, twc.Category)
	}

	return TransactionListResponse{
		Transactions: responses,
		Pagination: TransactionPaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Totals: TransactionTotalsResponse{
			IncomeTotal:  incomeTotal.StringFixed(2),
			ExpenseTotal: expenseTotal.StringFixed(2),
			NetTotal:     netTotal.StringFixed(2),
		},
	}
}
