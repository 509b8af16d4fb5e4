// Package report contains the reporting and aggregation use cases.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tags a ledger entry as money out or money in.
type EntryKind string

const (
	EntryKindExpense EntryKind = "expense"
	EntryKindRevenue EntryKind = "revenue"
)

// LedgerEntry is a dated monetary item fed into the time-bucketing fold.
type LedgerEntry struct {
	Date   time.Time
	Amount decimal.Decimal
	Kind   EntryKind
}

// FinancialMetric holds the totals for a single time bucket.
type FinancialMetric struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// zeroMetric returns a metric with all fields set to zero. Buckets are
// seeded with it so every period in the range exists even without activity.
func zeroMetric() *FinancialMetric {
	return &FinancialMetric{
		Revenue:  decimal.Zero,
		Expenses: decimal.Zero,
		Profit:   decimal.Zero,
	}
}

// TimeBasedMetrics groups bucket totals by granularity. Daily and weekly
// buckets are keyed by date ("2006-01-02", weekly by the Monday starting the
// week), monthly buckets by "2006-01".
type TimeBasedMetrics struct {
	Daily   map[string]*FinancialMetric `json:"daily"`
	Weekly  map[string]*FinancialMetric `json:"weekly"`
	Monthly map[string]*FinancialMetric `json:"monthly"`
}

// BuildTimeBasedMetrics partitions [startDate, endDate] into daily, weekly
// (Monday-start) and monthly buckets, seeds every bucket to zero, and folds
// each entry's amount into the matching bucket of all three granularities.
// Entries dated outside the range are ignored. An inverted range produces
// empty maps.
func BuildTimeBasedMetrics(startDate, endDate time.Time, entries []LedgerEntry) TimeBasedMetrics {
	metrics := TimeBasedMetrics{
		Daily:   make(map[string]*FinancialMetric),
		Weekly:  make(map[string]*FinancialMetric),
		Monthly: make(map[string]*FinancialMetric),
	}

	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	if start.After(end) {
		return metrics
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		metrics.Daily[day.Format("2006-01-02")] = zeroMetric()
	}

	for week := weekStart(start); !week.After(end); week = week.AddDate(0, 0, 7) {
		metrics.Weekly[week.Format("2006-01-02")] = zeroMetric()
	}

	for month := monthStart(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		metrics.Monthly[month.Format("2006-01")] = zeroMetric()
	}

	for _, entry := range entries {
		day := truncateToDay(entry.Date)
		keys := []struct {
			buckets map[string]*FinancialMetric
			key     string
		}{
			{metrics.Daily, day.Format("2006-01-02")},
			{metrics.Weekly, weekStart(day).Format("2006-01-02")},
			{metrics.Monthly, day.Format("2006-01")},
		}

		for _, k := range keys {
			bucket, ok := k.buckets[k.key]
			if !ok {
				continue
			}
			switch entry.Kind {
			case EntryKindExpense:
				bucket.Expenses = bucket.Expenses.Add(entry.Amount)
			case EntryKindRevenue:
				bucket.Revenue = bucket.Revenue.Add(entry.Amount)
			}
			bucket.Profit = bucket.Revenue.Sub(bucket.Expenses)
		}
	}

	return metrics
}

// truncateToDay strips the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}

// monthStart returns the first day of the month containing the given date.
func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// lastTwoBuckets returns the metrics for the two chronologically last bucket
// labels, or nil when fewer than two buckets exist. Bucket labels are
// zero-padded, so lexicographic order is chronological order.
func lastTwoBuckets(buckets map[string]*FinancialMetric) (previous, current *FinancialMetric) {
	if len(buckets) < 2 {
		return nil, nil
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return buckets[labels[len(labels)-2]], buckets[labels[len(labels)-1]]
}

// percentChange computes the percent change between two bucket values.
// A zero baseline is a business rule, not a division guard: growth from
// zero to a positive value reads as 100%, zero to zero reads as 0%.
func percentChange(previous, current decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}

	pct := current.Sub(previous).
		Div(previous.Abs()).
		Mul(decimal.NewFromInt(100))
	change, _ := pct.Round(2).Float64()
	return change
}
