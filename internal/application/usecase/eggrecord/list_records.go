// Package eggrecord contains egg-collection record use cases.
package eggrecord

import (
	"context"
	"time"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// ListRecordsInput represents the input for listing egg-collection records.
type ListRecordsInput struct {
	StartDate     *time.Time
	EndDate       *time.Time
	CageID        string
	PaymentStatus *entity.PaymentStatus
	CreditOnly    bool
	Page          int
	Limit         int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListRecordsOutput represents the output of listing egg-collection records.
type ListRecordsOutput struct {
	Records    []*RecordOutput
	Pagination PaginationOutput
}

// ListRecordsUseCase handles listing egg-collection records logic.
type ListRecordsUseCase struct {
	recordRepo adapter.EggRecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.EggRecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the egg-collection record listing.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.EggRecordFilter{
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		CageID:        input.CageID,
		PaymentStatus: input.PaymentStatus,
		CreditOnly:    input.CreditOnly,
	}

	result, err := uc.recordRepo.FindByFilter(ctx, filter, adapter.EggRecordPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	output := &ListRecordsOutput{
		Records: make([]*RecordOutput, len(result.Records)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for i, record := range result.Records {
		output.Records[i] = toRecordOutput(record)
	}

	return output, nil
}
