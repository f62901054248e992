// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionStatus represents the settlement state of a transaction.
// Income moves from pending to received; expenses move from pending to
// paid, or to overdue when the due date passes unpaid.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusPaid     TransactionStatus = "paid"
	TransactionStatusReceived TransactionStatus = "received"
	TransactionStatusOverdue  TransactionStatus = "overdue"
)

// ExpenseType classifies an expense as fixed (rent, subscriptions) or
// variable (groceries, leisure). Only meaningful on expense transactions.
type ExpenseType string

const (
	ExpenseTypeFixed    ExpenseType = "fixed"
	ExpenseTypeVariable ExpenseType = "variable"
)

// Transaction represents a financial transaction in the MoneyWise system.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal // Always positive; Type carries the sign
	Date        time.Time
	Type        TransactionType
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	Status      TransactionStatus
	IsRecurring bool
	DueDate     *time.Time
	ExpenseType *ExpenseType // Expense transactions only
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	status TransactionStatus,
	isRecurring bool,
	dueDate *time.Time,
	expenseType *ExpenseType,
	tags []string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Date:        date,
		Type:        transactionType,
		CategoryID:  categoryID,
		Status:      status,
		IsRecurring: isRecurring,
		DueDate:     dueDate,
		ExpenseType: expenseType,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsRealized reports whether money has actually moved for this transaction:
// paid for expenses, received for income.
func (t *Transaction) IsRealized() bool {
	switch t.Type {
	case TransactionTypeIncome:
		return t.Status == TransactionStatusReceived
	case TransactionTypeExpense:
		return t.Status == TransactionStatusPaid
	}
	return false
}

// ValidStatus reports whether the status is consistent with the transaction
// type: income allows pending/received, expense allows pending/paid/overdue.
func ValidStatus(transactionType TransactionType, status TransactionStatus) bool {
	switch transactionType {
	case TransactionTypeIncome:
		return status == TransactionStatusPending || status == TransactionStatusReceived
	case TransactionTypeExpense:
		return status == TransactionStatusPending ||
			status == TransactionStatusPaid ||
			status == TransactionStatusOverdue
	}
	return false
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
