// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// CreateCageInput represents the input for cage creation.
type CreateCageInput struct {
	Name        string
	CoopID      *uuid.UUID
	Capacity    int
	NewChickens int
	OldChickens int
}

// CageOutput represents a single cage in the output.
type CageOutput struct {
	ID               uuid.UUID
	Name             string
	CoopID           *uuid.UUID
	Capacity         int
	CurrentOccupancy int
	NewChickensCount int
	OldChickensCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateCageOutput represents the output of cage creation.
type CreateCageOutput struct {
	Cage *CageOutput
}

// CreateCageUseCase handles cage creation logic.
type CreateCageUseCase struct {
	cageRepo adapter.CageRepository
	coopRepo adapter.CoopRepository
}

// NewCreateCageUseCase creates a new CreateCageUseCase instance.
func NewCreateCageUseCase(
	cageRepo adapter.CageRepository,
	coopRepo adapter.CoopRepository,
) *CreateCageUseCase {
	return &CreateCageUseCase{
		cageRepo: cageRepo,
		coopRepo: coopRepo,
	}
}

// Execute performs the cage creation.
func (uc *CreateCageUseCase) Execute(ctx context.Context, input CreateCageInput) (*CreateCageOutput, error) {
	if input.Capacity > 0 && input.NewChickens+input.OldChickens > input.Capacity {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeCapacityExceeded,
			"occupancy exceeds capacity",
			domainerror.ErrCapacityExceeded,
		)
	}

	taken, err := uc.cageRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check cage name: %w", err)
	}
	if taken {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeCageNameTaken,
			fmt.Sprintf("a cage named %q already exists", input.Name),
			domainerror.ErrCageNameTaken,
		)
	}

	if input.CoopID != nil {
		if _, err := uc.coopRepo.FindByID(ctx, *input.CoopID); err != nil {
			return nil, domainerror.NewFlockError(
				domainerror.ErrCodeCoopNotFound,
				"coop not found",
				domainerror.ErrCoopNotFound,
			)
		}
	}

	cage := entity.NewCage(input.Name, input.CoopID, input.Capacity, input.NewChickens, input.OldChickens)

	if err := uc.cageRepo.Create(ctx, cage); err != nil {
		return nil, fmt.Errorf("failed to create cage: %w", err)
	}

	return &CreateCageOutput{Cage: toCageOutput(cage)}, nil
}

// toCageOutput maps an entity to the use case output shape.
func toCageOutput(cage *entity.Cage) *CageOutput {
	return &CageOutput{
		ID:               cage.ID,
		Name:             cage.Name,
		CoopID:           cage.CoopID,
		Capacity:         cage.Capacity,
		CurrentOccupancy: cage.CurrentOccupancy,
		NewChickensCount: cage.NewChickensCount,
		OldChickensCount: cage.OldChickensCount,
		CreatedAt:        cage.CreatedAt,
		UpdatedAt:        cage.UpdatedAt,
	}
}
