// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneywise/backend/internal/application/usecase/investment"
	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
)

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Type         string  `json:"type" binding:"required,oneof=fixed_income stocks funds crypto other"`
	Amount       string  `json:"amount" binding:"required"`
	InterestRate string  `json:"interest_rate" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	MaturityDate *string `json:"maturity_date,omitempty"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type         *string `json:"type,omitempty" binding:"omitempty,oneof=fixed_income stocks funds crypto other"`
	Amount       *string `json:"amount,omitempty"`
	InterestRate *string `json:"interest_rate,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	MaturityDate *string `json:"maturity_date,omitempty"`
}

// SimulateInvestmentRequest represents the request body for a compound
// growth simulation. Numeric parameters arrive as strings and are parsed
// with decimal.NewFromString; unparsable values are rejected.
type SimulateInvestmentRequest struct {
	Amount              string `json:"amount" binding:"required"`
	InterestRate        string `json:"interest_rate" binding:"required"`
	Years               int    `json:"years" binding:"required"`
	MonthlyContribution string `json:"monthly_contribution,omitempty"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	InterestRate string    `json:"interest_rate"`
	StartDate    string    `json:"start_date"`
	MaturityDate *string   `json:"maturity_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// YearProjectionResponse represents one projected year in API responses.
type YearProjectionResponse struct {
	Year             int    `json:"year"`
	Amount           string `json:"amount"`
	TotalContributed string `json:"total_contributed"`
	TotalReturn      string `json:"total_return"`
}

// SimulateInvestmentResponse represents the simulation response.
type SimulateInvestmentResponse struct {
	Projections []YearProjectionResponse `json:"projections"`
}

// ParseSimulationParam parses a wire simulation parameter into a decimal.
// The field name is included in the error message so the client can tell
// which parameter was rejected.
func ParseSimulationParam(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerror.NewInvestmentError(
			domainerror.ErrCodeUnparsableSimulationParam,
			field+" is not a valid decimal number",
			err,
		)
	}
	return value, nil
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	response := InvestmentResponse{
		ID:           inv.ID.String(),
		UserID:       inv.UserID.String(),
		Name:         inv.Name,
		Type:         string(inv.Type),
		Amount:       inv.Amount.StringFixed(2),
		InterestRate: inv.InterestRate.String(),
		StartDate:    inv.StartDate.Format("2006-01-02"),
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}

	if inv.MaturityDate != nil {
		dateStr := inv.MaturityDate.Format("2006-01-02")
		response.MaturityDate = &dateStr
	}

	return response
}

// ToInvestmentListResponse converts a list of Investment entities to InvestmentListResponse.
func ToInvestmentListResponse(investments []*entity.Investment) InvestmentListResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		responses[i] = ToInvestmentResponse(inv)
	}
	return InvestmentListResponse{
		Investments: responses,
	}
}

// ToSimulateInvestmentResponse converts simulation projections to the API response.
func ToSimulateInvestmentResponse(projections []investment.YearProjection) SimulateInvestmentResponse {
	responses := make([]YearProjectionResponse, len(projections))
	for i, p := range projections {
		responses[i] = YearProjectionResponse{
			Year:             p.Year,
			Amount:           p.Amount.StringFixed(2),
			TotalContributed: p.TotalContributed.StringFixed(2),
			TotalReturn:      p.TotalReturn.StringFixed(2),
		}
	}
	return SimulateInvestmentResponse{
		Projections: responses,
	}
}
