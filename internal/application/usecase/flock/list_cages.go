// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// ListCagesInput represents the input for listing cages.
type ListCagesInput struct {
	CoopID *uuid.UUID
}

// ListCagesOutput represents the output of listing cages.
type ListCagesOutput struct {
	Cages []*CageOutput
}

// ListCagesUseCase handles listing cages logic.
type ListCagesUseCase struct {
	cageRepo adapter.CageRepository
}

// NewListCagesUseCase creates a new ListCagesUseCase instance.
func NewListCagesUseCase(cageRepo adapter.CageRepository) *ListCagesUseCase {
	return &ListCagesUseCase{
		cageRepo: cageRepo,
	}
}

// Execute performs the cage listing, optionally scoped to one coop.
func (uc *ListCagesUseCase) Execute(ctx context.Context, input ListCagesInput) (*ListCagesOutput, error) {
	var (
		cages []*entity.Cage
		err   error
	)
	if input.CoopID != nil {
		cages, err = uc.cageRepo.FindByCoop(ctx, *input.CoopID)
	} else {
		cages, err = uc.cageRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	output := &ListCagesOutput{Cages: make([]*CageOutput, len(cages))}
	for i, cage := range cages {
		output.Cages[i] = toCageOutput(cage)
	}

	return output, nil
}
