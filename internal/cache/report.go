package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/config"
	"github.com/danisworo/stocklens/internal/domain"
)

const (
	reportKeyPrefix  = "analysis:report"
	scanBatchSize    = 100
	defaultReportTTL = 5 * time.Minute
)

// ReportCache caches finished analysis reports keyed by dataset fingerprint.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.Report, bool, error)
	Set(ctx context.Context, key string, rep *domain.Report) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

// NewReportCache returns a redis-backed cache, or a noop cache when caching
// is disabled.
func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.ReportTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultReportTTL
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

// NewNoopReportCache returns a cache that never hits.
func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

// Key fingerprints an input dataset plus the thresholds it will be analyzed
// with. Identical inputs and identical thresholds share a cache entry.
func Key(rows []domain.RawRow, cfg analyze.Config) string {
	h := sha1.New()
	// json.Marshal sorts map keys, so the fingerprint is deterministic.
	if payload, err := json.Marshal(rows); err == nil {
		h.Write(payload)
	}
	if payload, err := json.Marshal(cfg); err == nil {
		h.Write(payload)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *redisReportCache) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", reportKeyPrefix, key)
}

func (c *redisReportCache) Get(ctx context.Context, key string) (*domain.Report, bool, error) {
	payload, err := c.client.Get(ctx, c.cacheKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var rep domain.Report
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return &rep, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key string, rep *domain.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, c.cacheKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix, scanBatchSize)
}

func (c *noopReportCache) Get(context.Context, string) (*domain.Report, bool, error) {
	return nil, false, nil
}

func (c *noopReportCache) Set(context.Context, string, *domain.Report) error { return nil }

func (c *noopReportCache) InvalidateAll(context.Context) error { return nil }
