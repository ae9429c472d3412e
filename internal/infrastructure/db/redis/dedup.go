package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides ingest idempotency checks backed by Redis.
// Key format: dedup:<station_code>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact sample has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, stationCode string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(stationCode, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this sample has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, stationCode string, ts time.Time) error {
	return d.client.Set(ctx, d.key(stationCode, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(stationCode string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%d", stationCode, ts.Unix())
}
