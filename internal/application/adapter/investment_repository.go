// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneywise/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByUser retrieves all investments for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)

	// Update updates an existing investment in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
