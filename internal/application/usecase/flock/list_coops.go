// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"

	"github.com/cluck-and-track/backend/internal/application/adapter"
)

// ListCoopsOutput represents the output of listing coops.
type ListCoopsOutput struct {
	Coops []*CoopOutput
}

// ListCoopsUseCase handles listing coops logic.
type ListCoopsUseCase struct {
	coopRepo adapter.CoopRepository
}

// NewListCoopsUseCase creates a new ListCoopsUseCase instance.
func NewListCoopsUseCase(coopRepo adapter.CoopRepository) *ListCoopsUseCase {
	return &ListCoopsUseCase{
		coopRepo: coopRepo,
	}
}

// Execute performs the coop listing.
func (uc *ListCoopsUseCase) Execute(ctx context.Context) (*ListCoopsOutput, error) {
	coops, err := uc.coopRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListCoopsOutput{Coops: make([]*CoopOutput, len(coops))}
	for i, coop := range coops {
		output.Coops[i] = toCoopOutput(coop)
	}

	return output, nil
}
