// Package report contains the reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// ReportType identifies which aggregator a report request dispatches to.
type ReportType string

const (
	ReportTypeEggProduction ReportType = "egg-production"
	ReportTypeFinances      ReportType = "finances"
	ReportTypeCreditSales   ReportType = "credit-sales"
)

// Title returns the human-readable report title for the type.
func (t ReportType) Title() string {
	switch t {
	case ReportTypeEggProduction:
		return "Egg Production Report"
	case ReportTypeFinances:
		return "Financial Report"
	case ReportTypeCreditSales:
		return "Credit Sales Report"
	default:
		return "Custom Report"
	}
}

// Report is the generic envelope wrapping any generated report payload.
type Report struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Type      ReportType  `json:"type"`
	Date      string      `json:"date"`
	Data      interface{} `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
}

// GenerateReportInput represents the input for generating a report.
type GenerateReportInput struct {
	Type      ReportType
	StartDate time.Time
	EndDate   time.Time
}

// GenerateReportUseCase dispatches a report request to the matching
// aggregator and wraps the result in a report envelope. Freshly generated
// envelopes are cached by type and date range.
type GenerateReportUseCase struct {
	eggProduction *GenerateEggProductionReportUseCase
	financial     *GenerateFinancialReportUseCase
	creditSales   *GenerateCreditSalesSummaryUseCase
	cache         Cache
	cacheTTL      time.Duration
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
// The cache may be nil, in which case every request recomputes.
func NewGenerateReportUseCase(
	eggProduction *GenerateEggProductionReportUseCase,
	financial *GenerateFinancialReportUseCase,
	creditSales *GenerateCreditSalesSummaryUseCase,
	cache Cache,
	cacheTTL time.Duration,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		eggProduction: eggProduction,
		financial:     financial,
		creditSales:   creditSales,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// Execute generates the requested report.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*Report, error) {
	cacheKey := uc.cacheKey(input)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("Report cache lookup failed", "key", cacheKey, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var data interface{}
	var err error

	switch input.Type {
	case ReportTypeEggProduction:
		data, err = uc.eggProduction.Execute(ctx, GenerateEggProductionReportInput{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		})
	case ReportTypeFinances:
		data, err = uc.financial.Execute(ctx, GenerateFinancialReportInput{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		})
	case ReportTypeCreditSales:
		data, err = uc.creditSales.Execute(ctx)
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownReportType,
			fmt.Sprintf("unknown report type: %s", input.Type),
			domainerror.ErrUnknownReportType,
		)
	}

	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rep := &Report{
		ID: uuid.New(),
		Title: fmt.Sprintf("%s (%s - %s)",
			input.Type.Title(),
			input.StartDate.Format("2006-01-02"),
			input.EndDate.Format("2006-01-02"),
		),
		Type:      input.Type,
		Date:      now.Format("2006-01-02"),
		Data:      data,
		CreatedAt: now,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, rep, uc.cacheTTL); err != nil {
			slog.Warn("Report cache store failed", "key", cacheKey, "error", err)
		}
	}

	return rep, nil
}

// cacheKey builds the cache key for a report request.
func (uc *GenerateReportUseCase) cacheKey(input GenerateReportInput) string {
	return fmt.Sprintf("report:%s:%s:%s",
		input.Type,
		input.StartDate.Format("2006-01-02"),
		input.EndDate.Format("2006-01-02"),
	)
}
