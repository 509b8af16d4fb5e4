// Package report contains the reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// GenerateFinancialReportInput represents the input for generating a financial report.
type GenerateFinancialReportInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// TrendSet holds the period-over-period percent change of one metric at each
// granularity.
type TrendSet struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// FinancialTrends holds the trend sets for revenue, expenses and profit.
type FinancialTrends struct {
	Revenue  TrendSet `json:"revenue"`
	Expenses TrendSet `json:"expenses"`
	Profit   TrendSet `json:"profit"`
}

// FinancialReport is the aggregate produced for a closed date interval.
type FinancialReport struct {
	TotalRevenue       decimal.Decimal            `json:"total_revenue"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	NetProfit          decimal.Decimal            `json:"net_profit"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	RevenuesByCategory map[string]decimal.Decimal `json:"revenues_by_category"`
	TimeBasedMetrics   TimeBasedMetrics           `json:"time_based_metrics"`
	Trends             FinancialTrends            `json:"trends"`
	Expenses           []*entity.Expense          `json:"expenses"`
	Revenues           []*entity.Revenue          `json:"revenues"`
}

// GenerateFinancialReportUseCase aggregates expenses and revenues into a
// financial report.
type GenerateFinancialReportUseCase struct {
	expenseRepo ExpenseRepository
	revenueRepo RevenueRepository
}

// NewGenerateFinancialReportUseCase creates a new GenerateFinancialReportUseCase instance.
func NewGenerateFinancialReportUseCase(
	expenseRepo ExpenseRepository,
	revenueRepo RevenueRepository,
) *GenerateFinancialReportUseCase {
	return &GenerateFinancialReportUseCase{
		expenseRepo: expenseRepo,
		revenueRepo: revenueRepo,
	}
}

// Execute fetches the rows for the interval and derives the report. Empty
// input yields a zeroed report, never nil.
func (uc *GenerateFinancialReportUseCase) Execute(
	ctx context.Context,
	input GenerateFinancialReportInput,
) (*FinancialReport, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	revenues, err := uc.revenueRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenues: %w", err)
	}

	return uc.aggregate(input.StartDate, input.EndDate, expenses, revenues), nil
}

// aggregate is the pure fold over already-fetched rows.
func (uc *GenerateFinancialReportUseCase) aggregate(
	startDate, endDate time.Time,
	expenses []*entity.Expense,
	revenues []*entity.Revenue,
) *FinancialReport {
	totalExpenses := decimal.Zero
	expensesByCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
		category := expense.CategoryOrDefault()
		expensesByCategory[category] = expensesByCategory[category].Add(expense.Amount)
	}

	totalRevenue := decimal.Zero
	revenuesByCategory := make(map[string]decimal.Decimal)
	for _, revenue := range revenues {
		totalRevenue = totalRevenue.Add(revenue.Amount)
		category := revenue.CategoryOrDefault()
		revenuesByCategory[category] = revenuesByCategory[category].Add(revenue.Amount)
	}

	entries := make([]LedgerEntry, 0, len(expenses)+len(revenues))
	for _, expense := range expenses {
		entries = append(entries, LedgerEntry{
			Date:   expense.Date,
			Amount: expense.Amount,
			Kind:   EntryKindExpense,
		})
	}
	for _, revenue := range revenues {
		entries = append(entries, LedgerEntry{
			Date:   revenue.Date,
			Amount: revenue.Amount,
			Kind:   EntryKindRevenue,
		})
	}

	metrics := BuildTimeBasedMetrics(startDate, endDate, entries)

	return &FinancialReport{
		TotalRevenue:       totalRevenue,
		TotalExpenses:      totalExpenses,
		NetProfit:          totalRevenue.Sub(totalExpenses),
		ExpensesByCategory: expensesByCategory,
		RevenuesByCategory: revenuesByCategory,
		TimeBasedMetrics:   metrics,
		Trends:             calculateTrends(metrics),
		Expenses:           expenses,
		Revenues:           revenues,
	}
}

// calculateTrends compares the two most recent buckets of each granularity.
// Granularities with fewer than two buckets keep a zero trend.
func calculateTrends(metrics TimeBasedMetrics) FinancialTrends {
	var trends FinancialTrends

	granularities := []struct {
		buckets  map[string]*FinancialMetric
		revenue  *float64
		expenses *float64
		profit   *float64
	}{
		{metrics.Daily, &trends.Revenue.Daily, &trends.Expenses.Daily, &trends.Profit.Daily},
		{metrics.Weekly, &trends.Revenue.Weekly, &trends.Expenses.Weekly, &trends.Profit.Weekly},
		{metrics.Monthly, &trends.Revenue.Monthly, &trends.Expenses.Monthly, &trends.Profit.Monthly},
	}

	for _, g := range granularities {
		previous, current := lastTwoBuckets(g.buckets)
		if previous == nil || current == nil {
			continue
		}
		*g.revenue = percentChange(previous.Revenue, current.Revenue)
		*g.expenses = percentChange(previous.Expenses, current.Expenses)
		*g.profit = percentChange(previous.Profit, current.Profit)
	}

	return trends
}

// validateInput validates the input parameters.
func (uc *GenerateFinancialReportUseCase) validateInput(input GenerateFinancialReportInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	return nil
}
