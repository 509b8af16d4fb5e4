package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildTimeBasedMetricsSeedsEveryPeriod(t *testing.T) {
	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		wantDaily   int
		wantWeekly  int
		wantMonthly int
	}{
		{
			name:        "single day",
			start:       date(2025, time.March, 12),
			end:         date(2025, time.March, 12),
			wantDaily:   1,
			wantWeekly:  1,
			wantMonthly: 1,
		},
		{
			name:        "two weeks across a month boundary",
			start:       date(2025, time.March, 25),
			end:         date(2025, time.April, 7),
			wantDaily:   14,
			wantWeekly:  3, // weeks of Mar 24, Mar 31, Apr 7
			wantMonthly: 2,
		},
		{
			name:        "inverted range produces no buckets",
			start:       date(2025, time.March, 12),
			end:         date(2025, time.March, 11),
			wantDaily:   0,
			wantWeekly:  0,
			wantMonthly: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := BuildTimeBasedMetrics(tt.start, tt.end, nil)

			if got := len(metrics.Daily); got != tt.wantDaily {
				t.Errorf("daily buckets = %d, want %d", got, tt.wantDaily)
			}
			if got := len(metrics.Weekly); got != tt.wantWeekly {
				t.Errorf("weekly buckets = %d, want %d", got, tt.wantWeekly)
			}
			if got := len(metrics.Monthly); got != tt.wantMonthly {
				t.Errorf("monthly buckets = %d, want %d", got, tt.wantMonthly)
			}
		})
	}
}

func TestBuildTimeBasedMetricsFoldsIntoAllGranularities(t *testing.T) {
	start := date(2025, time.March, 10) // a Monday
	end := date(2025, time.March, 16)

	entries := []LedgerEntry{
		{Date: date(2025, time.March, 11), Amount: decimal.NewFromInt(40), Kind: EntryKindExpense},
		{Date: date(2025, time.March, 11), Amount: decimal.NewFromInt(100), Kind: EntryKindRevenue},
		{Date: date(2025, time.March, 14), Amount: decimal.NewFromInt(10), Kind: EntryKindExpense},
	}

	metrics := BuildTimeBasedMetrics(start, end, entries)

	tuesday := metrics.Daily["2025-03-11"]
	if tuesday == nil {
		t.Fatal("missing daily bucket for 2025-03-11")
	}
	if !tuesday.Expenses.Equal(decimal.NewFromInt(40)) {
		t.Errorf("tuesday expenses = %s, want 40", tuesday.Expenses)
	}
	if !tuesday.Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("tuesday revenue = %s, want 100", tuesday.Revenue)
	}
	if !tuesday.Profit.Equal(decimal.NewFromInt(60)) {
		t.Errorf("tuesday profit = %s, want 60", tuesday.Profit)
	}

	week := metrics.Weekly["2025-03-10"]
	if week == nil {
		t.Fatal("missing weekly bucket for 2025-03-10")
	}
	if !week.Expenses.Equal(decimal.NewFromInt(50)) {
		t.Errorf("week expenses = %s, want 50", week.Expenses)
	}
	if !week.Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("week profit = %s, want 50", week.Profit)
	}

	month := metrics.Monthly["2025-03"]
	if month == nil {
		t.Fatal("missing monthly bucket for 2025-03")
	}
	if !month.Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("month revenue = %s, want 100", month.Revenue)
	}
}

func TestBuildTimeBasedMetricsIgnoresOutOfRangeEntries(t *testing.T) {
	start := date(2025, time.March, 10)
	end := date(2025, time.March, 12)

	entries := []LedgerEntry{
		{Date: date(2025, time.March, 20), Amount: decimal.NewFromInt(99), Kind: EntryKindRevenue},
	}

	metrics := BuildTimeBasedMetrics(start, end, entries)

	for key, bucket := range metrics.Daily {
		if !bucket.Revenue.IsZero() {
			t.Errorf("daily bucket %s revenue = %s, want 0", key, bucket.Revenue)
		}
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2025, time.March, 10), date(2025, time.March, 10)},
		{"wednesday maps back", date(2025, time.March, 12), date(2025, time.March, 10)},
		{"sunday maps back six days", date(2025, time.March, 16), date(2025, time.March, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("weekStart(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		previous decimal.Decimal
		current  decimal.Decimal
		want     float64
	}{
		{"growth", decimal.NewFromInt(100), decimal.NewFromInt(150), 50},
		{"decline", decimal.NewFromInt(100), decimal.NewFromInt(75), -25},
		{"zero baseline with activity", decimal.Zero, decimal.NewFromInt(150), 100},
		{"zero baseline without activity", decimal.Zero, decimal.Zero, 0},
		{"zero baseline with loss", decimal.Zero, decimal.NewFromInt(-30), 0},
		{"negative baseline", decimal.NewFromInt(-50), decimal.NewFromInt(50), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentChange(tt.previous, tt.current); got != tt.want {
				t.Errorf("percentChange(%s, %s) = %v, want %v", tt.previous, tt.current, got, tt.want)
			}
		})
	}
}
