// Package report contains the reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// BuyerCredit accumulates one buyer's outstanding balance.
type BuyerCredit struct {
	Total          decimal.Decimal `json:"total"`
	Pending        decimal.Decimal `json:"pending"`
	Overdue        decimal.Decimal `json:"overdue"`
	LastPaymentDue *time.Time      `json:"last_payment_due"`
}

// CreditTimeAnalysis buckets sale amounts by period. Daily keys are
// "2006-01-02", weekly keys ISO-8601 "YYYY-Wnn", monthly keys "2006-01".
type CreditTimeAnalysis struct {
	Daily   map[string]decimal.Decimal `json:"daily"`
	Weekly  map[string]decimal.Decimal `json:"weekly"`
	Monthly map[string]decimal.Decimal `json:"monthly"`
}

// CreditSalesSummary is the aggregate over non-paid credit sales.
//
// The time-based analysis deliberately sums every sale amount regardless of
// payment status, while the top-level totals cover only non-paid records:
// the time series reads as sales volume over time, not outstanding balance.
type CreditSalesSummary struct {
	TotalOutstanding  decimal.Decimal         `json:"total_outstanding"`
	PendingAmount     decimal.Decimal         `json:"pending_amount"`
	OverdueAmount     decimal.Decimal         `json:"overdue_amount"`
	BuyerBreakdown    map[string]*BuyerCredit `json:"buyer_breakdown"`
	TimeBasedAnalysis CreditTimeAnalysis      `json:"time_based_analysis"`
}

// GenerateCreditSalesSummaryUseCase summarizes outstanding egg-collection
// sales by buyer and by time period.
type GenerateCreditSalesSummaryUseCase struct {
	eggRepo EggRecordRepository
	now     func() time.Time
}

// NewGenerateCreditSalesSummaryUseCase creates a new GenerateCreditSalesSummaryUseCase instance.
func NewGenerateCreditSalesSummaryUseCase(eggRepo EggRecordRepository) *GenerateCreditSalesSummaryUseCase {
	return &GenerateCreditSalesSummaryUseCase{
		eggRepo: eggRepo,
		now:     time.Now,
	}
}

// WithClock overrides the wall clock used for overdue detection.
func (uc *GenerateCreditSalesSummaryUseCase) WithClock(now func() time.Time) *GenerateCreditSalesSummaryUseCase {
	uc.now = now
	return uc
}

// Execute fetches the non-paid credit sales and derives the summary. Records
// missing buyer, price or sold count are skipped rather than rejected.
func (uc *GenerateCreditSalesSummaryUseCase) Execute(ctx context.Context) (*CreditSalesSummary, error) {
	records, err := uc.eggRepo.FindUnpaidCreditSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit sales: %w", err)
	}

	return uc.aggregate(records), nil
}

// aggregate is the pure fold over already-fetched rows.
func (uc *GenerateCreditSalesSummaryUseCase) aggregate(records []*entity.EggCollectionRecord) *CreditSalesSummary {
	summary := &CreditSalesSummary{
		TotalOutstanding: decimal.Zero,
		PendingAmount:    decimal.Zero,
		OverdueAmount:    decimal.Zero,
		BuyerBreakdown:   make(map[string]*BuyerCredit),
		TimeBasedAnalysis: CreditTimeAnalysis{
			Daily:   make(map[string]decimal.Decimal),
			Weekly:  make(map[string]decimal.Decimal),
			Monthly: make(map[string]decimal.Decimal),
		},
	}

	today := uc.now()

	for _, record := range records {
		if record.BuyerName == "" || record.PricePerUnit.IsZero() || record.Sold == 0 {
			continue
		}

		amount := record.SaleAmount()
		isOverdue := record.PaymentDue != nil &&
			record.PaymentDue.Before(today) &&
			record.PaymentStatus != entity.PaymentStatusPaid

		buyer, ok := summary.BuyerBreakdown[record.BuyerName]
		if !ok {
			buyer = &BuyerCredit{
				Total:          decimal.Zero,
				Pending:        decimal.Zero,
				Overdue:        decimal.Zero,
				LastPaymentDue: record.PaymentDue,
			}
			summary.BuyerBreakdown[record.BuyerName] = buyer
		}

		buyer.Total = buyer.Total.Add(amount)

		if isOverdue {
			buyer.Overdue = buyer.Overdue.Add(amount)
			summary.OverdueAmount = summary.OverdueAmount.Add(amount)
		} else if record.PaymentStatus == entity.PaymentStatusPending {
			buyer.Pending = buyer.Pending.Add(amount)
			summary.PendingAmount = summary.PendingAmount.Add(amount)
		}

		if record.PaymentStatus != entity.PaymentStatusPaid {
			summary.TotalOutstanding = summary.TotalOutstanding.Add(amount)
		}

		day := truncateToDay(record.Date)
		dayKey := day.Format("2006-01-02")
		isoYear, isoWeek := day.ISOWeek()
		weekKey := fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
		monthKey := day.Format("2006-01")

		summary.TimeBasedAnalysis.Daily[dayKey] = summary.TimeBasedAnalysis.Daily[dayKey].Add(amount)
		summary.TimeBasedAnalysis.Weekly[weekKey] = summary.TimeBasedAnalysis.Weekly[weekKey].Add(amount)
		summary.TimeBasedAnalysis.Monthly[monthKey] = summary.TimeBasedAnalysis.Monthly[monthKey].Add(amount)

		if record.PaymentDue != nil &&
			(buyer.LastPaymentDue == nil || record.PaymentDue.After(*buyer.LastPaymentDue)) {
			buyer.LastPaymentDue = record.PaymentDue
		}
	}

	return summary
}
