package report

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

type fakeCache struct {
	store  map[string]*Report
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*Report)}
}

func (c *fakeCache) Get(_ context.Context, key string) (*Report, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.store[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, rep *Report, _ time.Duration) error {
	c.store[key] = rep
	c.sets++
	return nil
}

func newReportUseCase(cache Cache) *GenerateReportUseCase {
	eggRepo := &stubEggRecordRepo{}
	expenseRepo := &stubExpenseRepo{}
	revenueRepo := &stubRevenueRepo{}

	return NewGenerateReportUseCase(
		NewGenerateEggProductionReportUseCase(eggRepo, expenseRepo, DefaultEggPricing()),
		NewGenerateFinancialReportUseCase(expenseRepo, revenueRepo),
		NewGenerateCreditSalesSummaryUseCase(eggRepo),
		cache,
		time.Minute,
	)
}

func TestGenerateReportEnvelope(t *testing.T) {
	uc := newReportUseCase(nil)

	rep, err := uc.Execute(context.Background(), GenerateReportInput{
		Type:      ReportTypeFinances,
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if rep.Type != ReportTypeFinances {
		t.Errorf("Type = %s, want %s", rep.Type, ReportTypeFinances)
	}
	if rep.Title != "Financial Report (2025-03-01 - 2025-03-31)" {
		t.Errorf("Title = %q", rep.Title)
	}
	if _, ok := rep.Data.(*FinancialReport); !ok {
		t.Errorf("Data type = %T, want *FinancialReport", rep.Data)
	}
}

func TestGenerateReportDispatch(t *testing.T) {
	tests := []struct {
		reportType ReportType
		wantData   string
	}{
		{ReportTypeEggProduction, "*report.EggProductionReport"},
		{ReportTypeFinances, "*report.FinancialReport"},
		{ReportTypeCreditSales, "*report.CreditSalesSummary"},
	}

	uc := newReportUseCase(nil)

	for _, tt := range tests {
		t.Run(string(tt.reportType), func(t *testing.T) {
			rep, err := uc.Execute(context.Background(), GenerateReportInput{
				Type:      tt.reportType,
				StartDate: date(2025, time.March, 1),
				EndDate:   date(2025, time.March, 31),
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			switch rep.Data.(type) {
			case *EggProductionReport:
				if tt.wantData != "*report.EggProductionReport" {
					t.Errorf("unexpected payload type for %s", tt.reportType)
				}
			case *FinancialReport:
				if tt.wantData != "*report.FinancialReport" {
					t.Errorf("unexpected payload type for %s", tt.reportType)
				}
			case *CreditSalesSummary:
				if tt.wantData != "*report.CreditSalesSummary" {
					t.Errorf("unexpected payload type for %s", tt.reportType)
				}
			default:
				t.Errorf("payload type = %T", rep.Data)
			}
		})
	}
}

func TestGenerateReportUnknownType(t *testing.T) {
	uc := newReportUseCase(nil)

	_, err := uc.Execute(context.Background(), GenerateReportInput{
		Type:      ReportType("quarterly"),
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	})
	if err == nil {
		t.Fatal("Execute() expected error for unknown type")
	}
	if !errors.Is(err, domainerror.ErrUnknownReportType) {
		t.Errorf("error = %v, want ErrUnknownReportType", err)
	}
}

func TestGenerateReportCacheRoundTrip(t *testing.T) {
	cache := newFakeCache()
	uc := newReportUseCase(cache)

	input := GenerateReportInput{
		Type:      ReportTypeEggProduction,
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if second.ID != first.ID {
		t.Error("second call should have returned the cached envelope")
	}
	if cache.sets != 1 {
		t.Errorf("cache sets after hit = %d, want 1", cache.sets)
	}
}

func TestGenerateReportCacheFailureFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	uc := newReportUseCase(cache)

	rep, err := uc.Execute(context.Background(), GenerateReportInput{
		Type:      ReportTypeFinances,
		StartDate: date(2025, time.March, 1),
		EndDate:   date(2025, time.March, 31),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rep == nil {
		t.Fatal("cache failure must not prevent report generation")
	}
}
