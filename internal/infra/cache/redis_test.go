package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cluck-and-track/backend/internal/application/usecase/report"
)

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewReportCache(client), server
}

func TestReportCacheMissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	rep, err := cache.Get(context.Background(), "report:missing")
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if rep != nil {
		t.Fatalf("expected nil report on miss, got %+v", rep)
	}
}

func TestReportCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)

	stored := &report.Report{
		ID:        uuid.New(),
		Title:     "Egg Production Report",
		Type:      report.ReportTypeEggProduction,
		Date:      "2026-01-01 - 2026-01-31",
		CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := cache.Set(context.Background(), "report:egg", stored, time.Minute); err != nil {
		t.Fatalf("expected no error on set, got %v", err)
	}

	got, err := cache.Get(context.Background(), "report:egg")
	if err != nil {
		t.Fatalf("expected no error on get, got %v", err)
	}
	if got == nil {
		t.Fatal("expected cached report, got nil")
	}
	if got.ID != stored.ID || got.Type != stored.Type || got.Title != stored.Title {
		t.Fatalf("cached report mismatch: got %+v", got)
	}
}

func TestReportCacheExpiry(t *testing.T) {
	cache, server := newTestCache(t)

	stored := &report.Report{ID: uuid.New(), Type: report.ReportTypeFinances}
	if err := cache.Set(context.Background(), "report:fin", stored, time.Second); err != nil {
		t.Fatalf("expected no error on set, got %v", err)
	}

	server.FastForward(2 * time.Second)

	got, err := cache.Get(context.Background(), "report:fin")
	if err != nil {
		t.Fatalf("expected no error after expiry, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected cache miss after expiry, got %+v", got)
	}
}

func TestReportCacheCorruptEntryTreatedAsMiss(t *testing.T) {
	cache, server := newTestCache(t)

	server.Set("report:bad", "{not json")

	got, err := cache.Get(context.Background(), "report:bad")
	if err != nil {
		t.Fatalf("expected no error on corrupt entry, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss on corrupt entry, got %+v", got)
	}
}
