// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneywise/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  string  `json:"target_amount" binding:"required"`
	CurrentAmount string  `json:"current_amount,omitempty"`
	TargetDate    *string `json:"target_date,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount  *string `json:"target_amount,omitempty"`
	CurrentAmount *string `json:"current_amount,omitempty"`
	TargetDate    *string `json:"target_date,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Progress      string    `json:"progress"`
	TargetDate    *string   `json:"target_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		Progress:      g.Progress().StringFixed(2),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.TargetDate != nil {
		dateStr := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &dateStr
	}

	return response
}

// ToGoalListResponse converts a list of Goal entities to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
