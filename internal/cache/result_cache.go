package cache

import (
	"context"
	"encoding/json"
	"time"

	"codexam/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	recentResultsKey = "results:recent"
	maxRecentResults = 100
	recentResultsTTL = 24 * time.Hour
)

// ResultCache keeps a short-lived feed of graded and evaluated submissions
// for the professor dashboard.
type ResultCache interface {
	Record(ctx context.Context, rec model.SubmissionRecord) error
	Recent(ctx context.Context, limit int) ([]model.SubmissionRecord, error)
}

type resultCache struct {
	client *redis.Client
}

// NewResultCache creates a Redis-backed result cache.
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{client: client}
}

func (c *resultCache) Record(ctx context.Context, rec model.SubmissionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentResultsKey, data)
	pipe.LTrim(ctx, recentResultsKey, 0, maxRecentResults-1)
	pipe.Expire(ctx, recentResultsKey, recentResultsTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *resultCache) Recent(ctx context.Context, limit int) ([]model.SubmissionRecord, error) {
	if limit <= 0 || limit > maxRecentResults {
		limit = maxRecentResults
	}

	entries, err := c.client.LRange(ctx, recentResultsKey, 0, int64(limit-1)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]model.SubmissionRecord, 0, len(entries))
	for _, entry := range entries {
		var rec model.SubmissionRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
