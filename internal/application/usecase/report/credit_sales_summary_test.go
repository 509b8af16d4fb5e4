package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

func creditSale(day time.Time, buyer string, price string, sold int, due *time.Time, status entity.PaymentStatus) *entity.EggCollectionRecord {
	return &entity.EggCollectionRecord{
		ID:            uuid.New(),
		Date:          day,
		CageID:        "A",
		Count:         sold,
		Sold:          sold,
		SoldAs:        entity.SoldAsSingle,
		PricePerUnit:  decimal.RequireFromString(price),
		PaymentDue:    due,
		PaymentStatus: status,
		BuyerName:     buyer,
	}
}

func TestGenerateCreditSalesSummaryBuyerBreakdown(t *testing.T) {
	now := date(2025, time.March, 15)
	past := date(2025, time.March, 10)
	future := date(2025, time.March, 20)

	records := []*entity.EggCollectionRecord{
		creditSale(date(2025, time.March, 8), "X", "2.00", 10, &future, entity.PaymentStatusPending),
		creditSale(date(2025, time.March, 9), "X", "3.00", 10, &past, entity.PaymentStatusPending),
	}

	uc := NewGenerateCreditSalesSummaryUseCase(&stubEggRecordRepo{unpaid: records}).
		WithClock(func() time.Time { return now })

	summary, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !summary.TotalOutstanding.Equal(decimal.NewFromInt(50)) {
		t.Errorf("TotalOutstanding = %s, want 50", summary.TotalOutstanding)
	}
	if !summary.PendingAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PendingAmount = %s, want 20", summary.PendingAmount)
	}
	if !summary.OverdueAmount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("OverdueAmount = %s, want 30", summary.OverdueAmount)
	}

	buyer, ok := summary.BuyerBreakdown["X"]
	if !ok {
		t.Fatal("buyer X missing from breakdown")
	}
	if !buyer.Total.Equal(decimal.NewFromInt(50)) ||
		!buyer.Pending.Equal(decimal.NewFromInt(20)) ||
		!buyer.Overdue.Equal(decimal.NewFromInt(30)) {
		t.Errorf("buyer X = total %s pending %s overdue %s, want 50/20/30",
			buyer.Total, buyer.Pending, buyer.Overdue)
	}
	if buyer.LastPaymentDue == nil || !buyer.LastPaymentDue.Equal(future) {
		t.Errorf("LastPaymentDue = %v, want %v", buyer.LastPaymentDue, future)
	}
}

func TestGenerateCreditSalesSummarySkipsMalformedRecords(t *testing.T) {
	due := date(2025, time.March, 20)

	noBuyer := creditSale(date(2025, time.March, 8), "", "2.00", 10, &due, entity.PaymentStatusPending)
	noPrice := creditSale(date(2025, time.March, 8), "X", "0", 10, &due, entity.PaymentStatusPending)
	noSold := creditSale(date(2025, time.March, 8), "X", "2.00", 0, &due, entity.PaymentStatusPending)
	good := creditSale(date(2025, time.March, 8), "Y", "1.50", 4, &due, entity.PaymentStatusPending)

	uc := NewGenerateCreditSalesSummaryUseCase(&stubEggRecordRepo{
		unpaid: []*entity.EggCollectionRecord{noBuyer, noPrice, noSold, good},
	}).WithClock(func() time.Time { return date(2025, time.March, 10) })

	summary, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(summary.BuyerBreakdown) != 1 {
		t.Fatalf("buyers = %d, want 1", len(summary.BuyerBreakdown))
	}
	if !summary.TotalOutstanding.Equal(decimal.RequireFromString("6.00")) {
		t.Errorf("TotalOutstanding = %s, want 6.00", summary.TotalOutstanding)
	}
}

func TestGenerateCreditSalesSummaryTimeAnalysisKeys(t *testing.T) {
	due := date(2025, time.April, 1)

	// 2025-03-10 is a Monday in ISO week 11.
	records := []*entity.EggCollectionRecord{
		creditSale(date(2025, time.March, 10), "X", "2.00", 5, &due, entity.PaymentStatusPending),
		creditSale(date(2025, time.March, 12), "Y", "1.00", 4, &due, entity.PaymentStatusPending),
	}

	uc := NewGenerateCreditSalesSummaryUseCase(&stubEggRecordRepo{unpaid: records}).
		WithClock(func() time.Time { return date(2025, time.March, 14) })

	summary, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := summary.TimeBasedAnalysis.Daily["2025-03-10"]; !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf(`Daily["2025-03-10"] = %s, want 10`, got)
	}
	if got := summary.TimeBasedAnalysis.Weekly["2025-W11"]; !got.Equal(decimal.NewFromInt(14)) {
		t.Errorf(`Weekly["2025-W11"] = %s, want 14`, got)
	}
	if got := summary.TimeBasedAnalysis.Monthly["2025-03"]; !got.Equal(decimal.NewFromInt(14)) {
		t.Errorf(`Monthly["2025-03"] = %s, want 14`, got)
	}
}

func TestGenerateCreditSalesSummaryTimeAnalysisIncludesPaid(t *testing.T) {
	due := date(2025, time.March, 1)

	// A paid record still counts toward sales volume over time even though
	// it adds nothing to the outstanding totals.
	paid := creditSale(date(2025, time.March, 3), "X", "2.00", 5, &due, entity.PaymentStatusPaid)
	pending := creditSale(date(2025, time.March, 3), "X", "2.00", 5, &due, entity.PaymentStatusPending)

	uc := NewGenerateCreditSalesSummaryUseCase(&stubEggRecordRepo{
		unpaid: []*entity.EggCollectionRecord{paid, pending},
	}).WithClock(func() time.Time { return date(2025, time.March, 10) })

	summary, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !summary.TotalOutstanding.Equal(decimal.NewFromInt(10)) {
		t.Errorf("TotalOutstanding = %s, want 10", summary.TotalOutstanding)
	}
	if got := summary.TimeBasedAnalysis.Daily["2025-03-03"]; !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf(`Daily["2025-03-03"] = %s, want 20`, got)
	}
}

func TestGenerateCreditSalesSummaryNoRecords(t *testing.T) {
	uc := NewGenerateCreditSalesSummaryUseCase(&stubEggRecordRepo{})

	summary, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if summary == nil {
		t.Fatal("Execute() returned nil summary")
	}
	if !summary.TotalOutstanding.IsZero() || len(summary.BuyerBreakdown) != 0 {
		t.Errorf("summary not empty: outstanding %s, buyers %d",
			summary.TotalOutstanding, len(summary.BuyerBreakdown))
	}
}
