// Package cache provides a Redis-backed cache for generated reports.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cluck-and-track/backend/config"
	"github.com/cluck-and-track/backend/internal/application/usecase/report"
)

// ReportCache stores serialized reports in Redis with a TTL.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache from an existing Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// NewRedisClient opens a Redis connection and verifies it with a ping.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}

// Get returns the cached report for the given key, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) (*report.Report, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached report: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		// A corrupt entry is treated as a miss so the report is recomputed.
		slog.Warn("Discarding unreadable cached report", "key", key, "error", err)
		return nil, nil
	}

	return &rep, nil
}

// Set stores the report under the given key with the given TTL.
func (c *ReportCache) Set(ctx context.Context, key string, rep *report.Report, ttl time.Duration) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to serialize report for caching: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cached report: %w", err)
	}

	return nil
}
