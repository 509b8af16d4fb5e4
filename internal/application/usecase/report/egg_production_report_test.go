package report

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

type stubEggRecordRepo struct {
	records []*entity.EggCollectionRecord
	unpaid  []*entity.EggCollectionRecord
}

func (s *stubEggRecordRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.EggCollectionRecord, error) {
	return s.records, nil
}

func (s *stubEggRecordRepo) FindUnpaidCreditSales(_ context.Context) ([]*entity.EggCollectionRecord, error) {
	return s.unpaid, nil
}

func eggRecord(day time.Time, cageID string, count, damaged, spoiled, sold int) *entity.EggCollectionRecord {
	return &entity.EggCollectionRecord{
		ID:           uuid.New(),
		Date:         day,
		CageID:       cageID,
		Count:        count,
		Damaged:      damaged,
		Spoiled:      spoiled,
		Sold:         sold,
		SoldAs:       entity.SoldAsSingle,
		PricePerUnit: DefaultSingleEggPrice,
	}
}

func TestGenerateEggProductionReportMixedSales(t *testing.T) {
	day := date(2025, time.March, 10)

	newChickens := eggRecord(day, "A", 10, 1, 0, 5)
	newChickens.IsFromNewChickens = true

	oldChickens := eggRecord(day, "A", 8, 0, 0, 8)
	oldChickens.SoldAs = entity.SoldAsCrate
	oldChickens.PricePerUnit = DefaultCratePrice

	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{records: []*entity.EggCollectionRecord{newChickens, oldChickens}},
		&stubExpenseRepo{feed: []*entity.Expense{expenseOn(day, 2, entity.FeedCategory)}},
		DefaultEggPricing(),
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if rep.TotalEggs != 18 {
		t.Errorf("TotalEggs = %d, want 18", rep.TotalEggs)
	}
	if rep.SoldCount != 13 || rep.SoldSingles != 5 || rep.SoldCrates != 0 {
		t.Errorf("sold = %d singles = %d crates = %d, want 13/5/0",
			rep.SoldCount, rep.SoldSingles, rep.SoldCrates)
	}
	if rep.LeftoverCount != 4 {
		t.Errorf("LeftoverCount = %d, want 4", rep.LeftoverCount)
	}

	// 5 singles at 0.50 plus 8 crate-sold eggs priced as remainder singles
	// at 0.50: 2.50 + 4.00.
	if !rep.ActualIncome.Equal(decimal.RequireFromString("6.50")) {
		t.Errorf("ActualIncome = %s, want 6.50", rep.ActualIncome)
	}
	if !rep.PotentialIncome.Equal(decimal.RequireFromString("9.00")) {
		t.Errorf("PotentialIncome = %s, want 9.00", rep.PotentialIncome)
	}
	if !rep.LostIncomeFromDamaged.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("LostIncomeFromDamaged = %s, want 0.50", rep.LostIncomeFromDamaged)
	}
	if !rep.FeedCost.Equal(decimal.NewFromInt(2)) {
		t.Errorf("FeedCost = %s, want 2", rep.FeedCost)
	}
	if !rep.Profit.Equal(decimal.RequireFromString("4.50")) {
		t.Errorf("Profit = %s, want 4.50", rep.Profit)
	}

	cage, ok := rep.ByCage["A"]
	if !ok {
		t.Fatal("cage A missing from ByCage")
	}
	if cage.Total != 18 || cage.NewChickens != 10 || cage.OldChickens != 8 || cage.Damaged != 1 {
		t.Errorf("cage A = %+v, want total 18 new 10 old 8 damaged 1", cage)
	}

	if rep.ByChickenAge.New.Total != 10 || rep.ByChickenAge.Old.Total != 8 {
		t.Errorf("age split = new %d / old %d, want 10/8",
			rep.ByChickenAge.New.Total, rep.ByChickenAge.Old.Total)
	}
	if !rep.ByChickenAge.Old.Income.Equal(decimal.RequireFromString("4.00")) {
		t.Errorf("old cohort income = %s, want 4.00", rep.ByChickenAge.Old.Income)
	}

	wantDamagedPct := float64(1) / float64(18) * 100
	if math.Abs(rep.DamagedPercentage-wantDamagedPct) > 1e-9 {
		t.Errorf("DamagedPercentage = %v, want %v", rep.DamagedPercentage, wantDamagedPct)
	}
}

func TestGenerateEggProductionReportWholeCrates(t *testing.T) {
	day := date(2025, time.March, 10)

	record := eggRecord(day, "B", 70, 0, 0, 65)
	record.SoldAs = entity.SoldAsCrate

	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{records: []*entity.EggCollectionRecord{record}},
		&stubExpenseRepo{},
		DefaultEggPricing(),
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if rep.SoldCrates != 2 {
		t.Errorf("SoldCrates = %d, want 2", rep.SoldCrates)
	}
	// Two crates at 13.00 plus five singles at 0.50.
	if !rep.ActualIncome.Equal(decimal.RequireFromString("28.50")) {
		t.Errorf("ActualIncome = %s, want 28.50", rep.ActualIncome)
	}
}

func TestGenerateEggProductionReportUnspecifiedSoldAs(t *testing.T) {
	day := date(2025, time.March, 10)

	record := eggRecord(day, "A", 10, 0, 0, 6)
	record.SoldAs = ""

	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{records: []*entity.EggCollectionRecord{record}},
		&stubExpenseRepo{},
		DefaultEggPricing(),
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Records without a sale unit still count as sold but land in neither
	// the singles nor the crates tally.
	if rep.SoldCount != 6 {
		t.Errorf("SoldCount = %d, want 6", rep.SoldCount)
	}
	if rep.SoldSingles != 0 || rep.SoldCrates != 0 {
		t.Errorf("singles = %d crates = %d, want 0/0", rep.SoldSingles, rep.SoldCrates)
	}
}

func TestGenerateEggProductionReportDailyAverageAndOrder(t *testing.T) {
	day1 := date(2025, time.March, 10)
	day2 := date(2025, time.March, 12)

	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{records: []*entity.EggCollectionRecord{
			eggRecord(day2, "A", 6, 0, 0, 0),
			eggRecord(day1, "A", 12, 0, 0, 0),
		}},
		&stubExpenseRepo{},
		DefaultEggPricing(),
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: day1,
		EndDate:   day2,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Two distinct collection days, 18 eggs.
	if rep.DailyAverage != 9 {
		t.Errorf("DailyAverage = %v, want 9", rep.DailyAverage)
	}
	if len(rep.ByDate) != 2 {
		t.Fatalf("ByDate rows = %d, want 2", len(rep.ByDate))
	}
	if rep.ByDate[0].Date != "2025-03-10" || rep.ByDate[1].Date != "2025-03-12" {
		t.Errorf("ByDate not sorted ascending: %s, %s", rep.ByDate[0].Date, rep.ByDate[1].Date)
	}
}

func TestGenerateEggProductionReportNoRecords(t *testing.T) {
	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{},
		&stubExpenseRepo{},
		DefaultEggPricing(),
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: date(2025, time.March, 10),
		EndDate:   date(2025, time.March, 20),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rep == nil {
		t.Fatal("Execute() returned nil report for empty input")
	}

	if rep.TotalEggs != 0 || rep.DailyAverage != 0 {
		t.Errorf("TotalEggs = %d DailyAverage = %v, want zeros", rep.TotalEggs, rep.DailyAverage)
	}
	if !rep.ActualIncome.IsZero() || !rep.Profit.IsZero() {
		t.Errorf("income = %s profit = %s, want zeros", rep.ActualIncome, rep.Profit)
	}
	if rep.ByDate == nil || rep.ByCage == nil {
		t.Error("empty report must keep non-nil collections")
	}
}

func TestGenerateEggProductionReportCustomPricing(t *testing.T) {
	day := date(2025, time.March, 10)

	record := eggRecord(day, "A", 12, 0, 0, 12)
	record.SoldAs = entity.SoldAsCrate

	pricing := EggPricing{
		SinglePrice: decimal.RequireFromString("1.00"),
		CrateSize:   12,
		CratePrice:  decimal.RequireFromString("10.00"),
	}

	uc := NewGenerateEggProductionReportUseCase(
		&stubEggRecordRepo{records: []*entity.EggCollectionRecord{record}},
		&stubExpenseRepo{},
		pricing,
	)

	rep, err := uc.Execute(context.Background(), GenerateEggProductionReportInput{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if rep.SoldCrates != 1 {
		t.Errorf("SoldCrates = %d, want 1", rep.SoldCrates)
	}
	if !rep.ActualIncome.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("ActualIncome = %s, want 10.00", rep.ActualIncome)
	}
	if !rep.PotentialIncome.Equal(decimal.RequireFromString("12.00")) {
		t.Errorf("PotentialIncome = %s, want 12.00", rep.PotentialIncome)
	}
}
