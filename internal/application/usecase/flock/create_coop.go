// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// CreateCoopInput represents the input for coop creation.
type CreateCoopInput struct {
	Name     string
	Capacity int
}

// CoopOutput represents a single coop in the output.
type CoopOutput struct {
	ID               uuid.UUID
	Name             string
	Capacity         int
	CurrentOccupancy int
	LastCleaned      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateCoopOutput represents the output of coop creation.
type CreateCoopOutput struct {
	Coop *CoopOutput
}

// CreateCoopUseCase handles coop creation logic.
type CreateCoopUseCase struct {
	coopRepo adapter.CoopRepository
}

// NewCreateCoopUseCase creates a new CreateCoopUseCase instance.
func NewCreateCoopUseCase(coopRepo adapter.CoopRepository) *CreateCoopUseCase {
	return &CreateCoopUseCase{
		coopRepo: coopRepo,
	}
}

// Execute performs the coop creation.
func (uc *CreateCoopUseCase) Execute(ctx context.Context, input CreateCoopInput) (*CreateCoopOutput, error) {
	coop := entity.NewCoop(input.Name, input.Capacity)

	if err := uc.coopRepo.Create(ctx, coop); err != nil {
		return nil, fmt.Errorf("failed to create coop: %w", err)
	}

	return &CreateCoopOutput{Coop: toCoopOutput(coop)}, nil
}

// toCoopOutput maps an entity to the use case output shape.
func toCoopOutput(coop *entity.Coop) *CoopOutput {
	return &CoopOutput{
		ID:               coop.ID,
		Name:             coop.Name,
		Capacity:         coop.Capacity,
		CurrentOccupancy: coop.CurrentOccupancy,
		LastCleaned:      coop.LastCleaned,
		CreatedAt:        coop.CreatedAt,
		UpdatedAt:        coop.UpdatedAt,
	}
}
