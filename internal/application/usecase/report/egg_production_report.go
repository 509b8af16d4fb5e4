// Package report contains the reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// Egg sale pricing policy. These are farm policy defaults, not physical
// constants; deployments override them through configuration.
var (
	DefaultSingleEggPrice = decimal.RequireFromString("0.50")
	DefaultCratePrice     = decimal.RequireFromString("13.00")
)

// DefaultCrateSize is the number of eggs in one crate.
const DefaultCrateSize = 30

// EggPricing carries the sale prices used for income calculations.
type EggPricing struct {
	SinglePrice decimal.Decimal
	CrateSize   int
	CratePrice  decimal.Decimal
}

// DefaultEggPricing returns the default pricing policy.
func DefaultEggPricing() EggPricing {
	return EggPricing{
		SinglePrice: DefaultSingleEggPrice,
		CrateSize:   DefaultCrateSize,
		CratePrice:  DefaultCratePrice,
	}
}

// GenerateEggProductionReportInput represents the input for generating an egg production report.
type GenerateEggProductionReportInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// DailyProduction is one byDate row: all records of a calendar day summed.
type DailyProduction struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Damaged  int    `json:"damaged"`
	Spoiled  int    `json:"spoiled"`
	Sold     int    `json:"sold"`
	Leftover int    `json:"leftover"`
}

// CageProduction is one byCage row, with the total split by chicken age cohort.
type CageProduction struct {
	Total       int `json:"total"`
	NewChickens int `json:"new_chickens"`
	OldChickens int `json:"old_chickens"`
	Damaged     int `json:"damaged"`
}

// AgeCohortProduction accumulates one chicken-age cohort's production and income.
type AgeCohortProduction struct {
	Total   int             `json:"total"`
	Damaged int             `json:"damaged"`
	Sold    int             `json:"sold"`
	Income  decimal.Decimal `json:"income"`
}

// ChickenAgeBreakdown splits production between new and old chickens.
type ChickenAgeBreakdown struct {
	New AgeCohortProduction `json:"new"`
	Old AgeCohortProduction `json:"old"`
}

// EggProductionReport is the aggregate produced from egg-collection records.
type EggProductionReport struct {
	TotalEggs             int                        `json:"total_eggs"`
	DailyAverage          float64                    `json:"daily_average"`
	DamagedCount          int                        `json:"damaged_count"`
	DamagedPercentage     float64                    `json:"damaged_percentage"`
	SpoiledCount          int                        `json:"spoiled_count"`
	SpoiledPercentage     float64                    `json:"spoiled_percentage"`
	SoldCount             int                        `json:"sold_count"`
	SoldSingles           int                        `json:"sold_singles"`
	SoldCrates            int                        `json:"sold_crates"`
	LeftoverCount         int                        `json:"leftover_count"`
	PotentialIncome       decimal.Decimal            `json:"potential_income"`
	ActualIncome          decimal.Decimal            `json:"actual_income"`
	LostIncomeFromDamaged decimal.Decimal            `json:"lost_income_from_damaged"`
	FeedCost              decimal.Decimal            `json:"feed_cost"`
	Profit                decimal.Decimal            `json:"profit"`
	ByDate                []DailyProduction          `json:"by_date"`
	ByCage                map[string]*CageProduction `json:"by_cage"`
	ByChickenAge          ChickenAgeBreakdown        `json:"by_chicken_age"`
}

// GenerateEggProductionReportUseCase aggregates egg-collection records into a
// production report. Feed expenses for the same interval are charged against
// egg income to derive profit.
type GenerateEggProductionReportUseCase struct {
	eggRepo     EggRecordRepository
	expenseRepo ExpenseRepository
	pricing     EggPricing
}

// NewGenerateEggProductionReportUseCase creates a new GenerateEggProductionReportUseCase instance.
func NewGenerateEggProductionReportUseCase(
	eggRepo EggRecordRepository,
	expenseRepo ExpenseRepository,
	pricing EggPricing,
) *GenerateEggProductionReportUseCase {
	return &GenerateEggProductionReportUseCase{
		eggRepo:     eggRepo,
		expenseRepo: expenseRepo,
		pricing:     pricing,
	}
}

// Execute fetches the interval's records and derives the report. An interval
// without records yields a fully zeroed report, never nil.
func (uc *GenerateEggProductionReportUseCase) Execute(
	ctx context.Context,
	input GenerateEggProductionReportInput,
) (*EggProductionReport, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	records, err := uc.eggRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get egg collection records: %w", err)
	}

	if len(records) == 0 {
		return uc.emptyReport(), nil
	}

	feedExpenses, err := uc.expenseRepo.FindByCategoryAndDateRange(
		ctx,
		entity.FeedCategory,
		input.StartDate,
		input.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed expenses: %w", err)
	}

	feedCost := decimal.Zero
	for _, expense := range feedExpenses {
		feedCost = feedCost.Add(expense.Amount)
	}

	return uc.aggregate(records, feedCost), nil
}

// aggregate is the pure fold over already-fetched rows.
func (uc *GenerateEggProductionReportUseCase) aggregate(
	records []*entity.EggCollectionRecord,
	feedCost decimal.Decimal,
) *EggProductionReport {
	rep := uc.emptyReport()
	rep.FeedCost = feedCost

	byDate := make(map[string]*DailyProduction)
	soldSingles := 0
	crateSoldEggs := 0

	for _, record := range records {
		dateKey := truncateToDay(record.Date).Format("2006-01-02")
		day, ok := byDate[dateKey]
		if !ok {
			day = &DailyProduction{Date: dateKey}
			byDate[dateKey] = day
		}
		day.Total += record.Count
		day.Damaged += record.Damaged
		day.Spoiled += record.Spoiled
		day.Sold += record.Sold
		// Accumulate the raw per-record difference so an inconsistent
		// record cannot push a later day's leftover negative.
		day.Leftover += record.Count - record.Damaged - record.Spoiled - record.Sold

		cage, ok := rep.ByCage[record.CageID]
		if !ok {
			cage = &CageProduction{}
			rep.ByCage[record.CageID] = cage
		}
		cage.Total += record.Count
		cage.Damaged += record.Damaged
		if record.IsFromNewChickens {
			cage.NewChickens += record.Count
		} else {
			cage.OldChickens += record.Count
		}

		cohort := &rep.ByChickenAge.Old
		if record.IsFromNewChickens {
			cohort = &rep.ByChickenAge.New
		}
		cohort.Total += record.Count
		cohort.Damaged += record.Damaged
		cohort.Sold += record.Sold
		cohort.Income = cohort.Income.Add(uc.saleIncome(record))

		switch record.SoldAs {
		case entity.SoldAsCrate:
			crateSoldEggs += record.Sold
		case entity.SoldAsSingle:
			soldSingles += record.Sold
		}
	}

	for _, day := range byDate {
		rep.ByDate = append(rep.ByDate, *day)
		rep.TotalEggs += day.Total
		rep.DamagedCount += day.Damaged
		rep.SpoiledCount += day.Spoiled
		rep.SoldCount += day.Sold
		rep.LeftoverCount += day.Leftover
	}
	sort.Slice(rep.ByDate, func(i, j int) bool {
		return rep.ByDate[i].Date < rep.ByDate[j].Date
	})

	dayCount := len(rep.ByDate)
	if dayCount == 0 {
		dayCount = 1
	}
	rep.DailyAverage = float64(rep.TotalEggs) / float64(dayCount)

	if rep.TotalEggs > 0 {
		rep.DamagedPercentage = float64(rep.DamagedCount) / float64(rep.TotalEggs) * 100
		rep.SpoiledPercentage = float64(rep.SpoiledCount) / float64(rep.TotalEggs) * 100
	}

	rep.SoldSingles = soldSingles
	rep.SoldCrates = crateSoldEggs / uc.pricing.CrateSize

	rep.PotentialIncome = uc.pricing.SinglePrice.Mul(decimal.NewFromInt(int64(rep.TotalEggs)))
	rep.ActualIncome = rep.ByChickenAge.New.Income.Add(rep.ByChickenAge.Old.Income)
	rep.LostIncomeFromDamaged = uc.pricing.SinglePrice.
		Mul(decimal.NewFromInt(int64(rep.DamagedCount + rep.SpoiledCount)))
	rep.Profit = rep.ActualIncome.Sub(rep.FeedCost)

	return rep
}

// saleIncome prices one record's sale. Crate sales are whole crates at the
// crate price with the remainder priced as singles.
func (uc *GenerateEggProductionReportUseCase) saleIncome(record *entity.EggCollectionRecord) decimal.Decimal {
	if record.SoldAs == entity.SoldAsCrate {
		crates := record.Sold / uc.pricing.CrateSize
		singles := record.Sold % uc.pricing.CrateSize
		return uc.pricing.CratePrice.Mul(decimal.NewFromInt(int64(crates))).
			Add(uc.pricing.SinglePrice.Mul(decimal.NewFromInt(int64(singles))))
	}
	return uc.pricing.SinglePrice.Mul(decimal.NewFromInt(int64(record.Sold)))
}

// emptyReport returns the zero-valued report shape.
func (uc *GenerateEggProductionReportUseCase) emptyReport() *EggProductionReport {
	return &EggProductionReport{
		PotentialIncome:       decimal.Zero,
		ActualIncome:          decimal.Zero,
		LostIncomeFromDamaged: decimal.Zero,
		FeedCost:              decimal.Zero,
		Profit:                decimal.Zero,
		ByDate:                []DailyProduction{},
		ByCage:                make(map[string]*CageProduction),
		ByChickenAge: ChickenAgeBreakdown{
			New: AgeCohortProduction{Income: decimal.Zero},
			Old: AgeCohortProduction{Income: decimal.Zero},
		},
	}
}

// validateInput validates the input parameters.
func (uc *GenerateEggProductionReportUseCase) validateInput(input GenerateEggProductionReportInput) error {
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
