// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType represents the kind of investment product.
type InvestmentType string

const (
	InvestmentTypeFixedIncome InvestmentType = "fixed_income"
	InvestmentTypeStocks      InvestmentType = "stocks"
	InvestmentTypeFunds       InvestmentType = "funds"
	InvestmentTypeCrypto      InvestmentType = "crypto"
	InvestmentTypeOther       InvestmentType = "other"
)

// Investment represents a tracked investment position in the MoneyWise system.
// The simulator does not read stored investments; it takes ad-hoc parameters.
type Investment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Type         InvestmentType
	Amount       decimal.Decimal
	InterestRate decimal.Decimal // Annual percentage
	StartDate    time.Time
	MaturityDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	userID uuid.UUID,
	name string,
	investmentType InvestmentType,
	amount decimal.Decimal,
	interestRate decimal.Decimal,
	startDate time.Time,
	maturityDate *time.Time,
) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Type:         investmentType,
		Amount:       amount,
		InterestRate: interestRate,
		StartDate:    startDate,
		MaturityDate: maturityDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ValidInvestmentType reports whether t is a known investment type.
func ValidInvestmentType(t InvestmentType) bool {
	switch t {
	case InvestmentTypeFixedIncome, InvestmentTypeStocks, InvestmentTypeFunds,
		InvestmentTypeCrypto, InvestmentTypeOther:
		return true
	}
	return false
}
