// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/moneywise/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Type         string          `gorm:"type:varchar(20);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	StartDate    time.Time       `gorm:"type:date;not null"`
	MaturityDate *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Investment{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Type:         entity.InvestmentType(m.Type),
		Amount:       m.Amount,
		InterestRate: m.InterestRate,
		StartDate:    m.StartDate,
		MaturityDate: m.MaturityDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	var deletedAt gorm.DeletedAt
	if investment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *investment.DeletedAt, Valid: true}
	}

	return &InvestmentModel{
		ID:           investment.ID,
		UserID:       investment.UserID,
		Name:         investment.Name,
		Type:         string(investment.Type),
		Amount:       investment.Amount,
		InterestRate: investment.InterestRate,
		StartDate:    investment.StartDate,
		MaturityDate: investment.MaturityDate,
		CreatedAt:    investment.CreatedAt,
		UpdatedAt:    investment.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
