// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/moneywise/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	IsRecurring bool            `gorm:"default:false"`
	DueDate     *time.Time      `gorm:"type:date"`
	ExpenseType *string         `gorm:"type:varchar(10)"`
	Tags        pq.StringArray  `gorm:"type:text[]"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var expenseType *entity.ExpenseType
	if m.ExpenseType != nil {
		et := entity.ExpenseType(*m.ExpenseType)
		expenseType = &et
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		Type:        entity.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		Status:      entity.TransactionStatus(m.Status),
		IsRecurring: m.IsRecurring,
		DueDate:     m.DueDate,
		ExpenseType: expenseType,
		Tags:        []string(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its Category to a TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	var expenseType *string
	if transaction.ExpenseType != nil {
		et := string(*transaction.ExpenseType)
		expenseType = &et
	}

	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Type:        string(transaction.Type),
		CategoryID:  transaction.CategoryID,
		Status:      string(transaction.Status),
		IsRecurring: transaction.IsRecurring,
		DueDate:     transaction.DueDate,
		ExpenseType: expenseType,
		Tags:        pq.StringArray(transaction.Tags),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
