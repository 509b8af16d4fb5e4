package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

type stubExpenseRepo struct {
	expenses []*entity.Expense
	feed     []*entity.Expense
}

func (s *stubExpenseRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return s.expenses, nil
}

func (s *stubExpenseRepo) FindByCategoryAndDateRange(_ context.Context, _ string, _, _ time.Time) ([]*entity.Expense, error) {
	return s.feed, nil
}

type stubRevenueRepo struct {
	revenues []*entity.Revenue
}

func (s *stubRevenueRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Revenue, error) {
	return s.revenues, nil
}

func expenseOn(day time.Time, amount int64, category string) *entity.Expense {
	return &entity.Expense{
		ID:       uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     day,
	}
}

func revenueOn(day time.Time, amount int64, category string) *entity.Revenue {
	return &entity.Revenue{
		ID:       uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     day,
	}
}

func TestGenerateFinancialReportTotalsAndDailyTrend(t *testing.T) {
	day1 := date(2025, time.March, 10)
	day2 := date(2025, time.March, 11)

	uc := NewGenerateFinancialReportUseCase(
		&stubExpenseRepo{expenses: []*entity.Expense{expenseOn(day1, 100, "feed")}},
		&stubRevenueRepo{revenues: []*entity.Revenue{revenueOn(day2, 150, "egg sales")}},
	)

	rep, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		StartDate: day1,
		EndDate:   day2,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !rep.TotalExpenses.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TotalExpenses = %s, want 100", rep.TotalExpenses)
	}
	if !rep.TotalRevenue.Equal(decimal.NewFromInt(150)) {
		t.Errorf("TotalRevenue = %s, want 150", rep.TotalRevenue)
	}
	if !rep.NetProfit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("NetProfit = %s, want 50", rep.NetProfit)
	}

	// Day two's revenue grew from a zero baseline.
	if rep.Trends.Revenue.Daily != 100 {
		t.Errorf("daily revenue trend = %v, want 100", rep.Trends.Revenue.Daily)
	}
	if rep.Trends.Expenses.Daily != -100 {
		t.Errorf("daily expenses trend = %v, want -100", rep.Trends.Expenses.Daily)
	}
}

func TestGenerateFinancialReportCategoryBreakdown(t *testing.T) {
	day := date(2025, time.March, 10)

	uc := NewGenerateFinancialReportUseCase(
		&stubExpenseRepo{expenses: []*entity.Expense{
			expenseOn(day, 40, "feed"),
			expenseOn(day, 25, "feed"),
			expenseOn(day, 10, ""),
		}},
		&stubRevenueRepo{revenues: []*entity.Revenue{
			revenueOn(day, 200, "egg sales"),
		}},
	)

	rep, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := rep.ExpensesByCategory["feed"]; !got.Equal(decimal.NewFromInt(65)) {
		t.Errorf("feed expenses = %s, want 65", got)
	}
	if got := rep.ExpensesByCategory[entity.UncategorizedLabel]; !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("uncategorized expenses = %s, want 10", got)
	}
	if got := rep.RevenuesByCategory["egg sales"]; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("egg sales revenue = %s, want 200", got)
	}
}

func TestGenerateFinancialReportEmptyInputYieldsZeros(t *testing.T) {
	day1 := date(2025, time.March, 10)
	day2 := date(2025, time.March, 11)

	uc := NewGenerateFinancialReportUseCase(&stubExpenseRepo{}, &stubRevenueRepo{})

	rep, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		StartDate: day1,
		EndDate:   day2,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rep == nil {
		t.Fatal("Execute() returned nil report for empty input")
	}

	if !rep.TotalRevenue.IsZero() || !rep.TotalExpenses.IsZero() || !rep.NetProfit.IsZero() {
		t.Errorf("totals not zero: revenue=%s expenses=%s profit=%s",
			rep.TotalRevenue, rep.TotalExpenses, rep.NetProfit)
	}
	if len(rep.ExpensesByCategory) != 0 || len(rep.RevenuesByCategory) != 0 {
		t.Error("category breakdowns should be empty")
	}
	// Buckets are still seeded for the whole range.
	if len(rep.TimeBasedMetrics.Daily) != 2 {
		t.Errorf("daily buckets = %d, want 2", len(rep.TimeBasedMetrics.Daily))
	}
	if rep.Trends.Revenue.Daily != 0 {
		t.Errorf("daily revenue trend = %v, want 0", rep.Trends.Revenue.Daily)
	}
}

func TestGenerateFinancialReportSingleBucketKeepsZeroTrend(t *testing.T) {
	day := date(2025, time.March, 10)

	uc := NewGenerateFinancialReportUseCase(
		&stubExpenseRepo{},
		&stubRevenueRepo{revenues: []*entity.Revenue{revenueOn(day, 80, "egg sales")}},
	)

	rep, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// One daily, one weekly, one monthly bucket: no prior period to compare.
	if rep.Trends.Revenue.Daily != 0 || rep.Trends.Revenue.Weekly != 0 || rep.Trends.Revenue.Monthly != 0 {
		t.Errorf("trends = %+v, want all zero", rep.Trends.Revenue)
	}
}

func TestGenerateFinancialReportIsIdempotent(t *testing.T) {
	day1 := date(2025, time.March, 10)
	day2 := date(2025, time.March, 14)

	expenses := []*entity.Expense{
		expenseOn(day1, 30, "feed"),
		expenseOn(day2, 45, "medicine"),
	}
	revenues := []*entity.Revenue{revenueOn(day2, 120, "egg sales")}

	uc := NewGenerateFinancialReportUseCase(
		&stubExpenseRepo{expenses: expenses},
		&stubRevenueRepo{revenues: revenues},
	)

	input := GenerateFinancialReportInput{StartDate: day1, EndDate: day2}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	if !first.TotalExpenses.Equal(second.TotalExpenses) ||
		!first.NetProfit.Equal(second.NetProfit) ||
		first.Trends != second.Trends {
		t.Error("repeated aggregation over the same input diverged")
	}
}
