// Package offline keeps check-ins that could not be stored in Postgres in a
// Redis list until they can be synced.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/logger"

	"github.com/ewhettey/church-attendance/internal/domain"
)

// RedisQueue is a FIFO of offline records. New records are pushed on the
// left and taken from the right. A record being processed sits in a
// separate list so a crash mid-drain does not lose it.
type RedisQueue struct {
	client     *redis.Client
	key        string
	processing string
	logger     logger.Logger
}

func NewRedisQueue(client *redis.Client, key string, logger logger.Logger) *RedisQueue {
	return &RedisQueue{
		client:     client,
		key:        key,
		processing: key + ":processing",
		logger:     logger,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, recs ...domain.OfflineRecord) error {
	if len(recs) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", rec.ID, err)
		}
		values = append(values, raw)
	}

	if err := q.client.LPush(ctx, q.key, values...).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", q.key, err)
	}
	return nil
}

func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("llen %s: %w", q.key, err)
	}
	return n, nil
}

// Drain hands each record queued at the start of the call to fn once.
// Records for which fn returns false go back to the end of the queue with
// one more attempt counted.
func (q *RedisQueue) Drain(ctx context.Context, fn func(context.Context, domain.OfflineRecord) bool) error {
	if err := q.restoreInterrupted(ctx); err != nil {
		return err
	}

	n, err := q.Len(ctx)
	if err != nil {
		return err
	}

	for i := int64(0); i < n; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw, err := q.client.RPopLPush(ctx, q.key, q.processing).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("rpoplpush %s: %w", q.key, err)
		}

		var rec domain.OfflineRecord
		if err = json.Unmarshal([]byte(raw), &rec); err != nil {
			q.logger.Error("dropping undecodable offline record",
				logger.String("error", err.Error()),
			)
			if err = q.ack(ctx, raw); err != nil {
				return err
			}
			continue
		}

		if fn(ctx, rec) {
			if err = q.ack(ctx, raw); err != nil {
				return err
			}
			continue
		}

		if err = q.retry(ctx, raw, rec); err != nil {
			return err
		}
	}

	return nil
}

func (q *RedisQueue) ack(ctx context.Context, raw string) error {
	if err := q.client.LRem(ctx, q.processing, 1, raw).Err(); err != nil {
		return fmt.Errorf("lrem %s: %w", q.processing, err)
	}
	return nil
}

func (q *RedisQueue) retry(ctx context.Context, raw string, rec domain.OfflineRecord) error {
	rec.Attempts++
	next, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", rec.ID, err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processing, 1, raw)
		pipe.LPush(ctx, q.key, next)
		return nil
	})
	if err != nil {
		return fmt.Errorf("requeue record %s: %w", rec.ID, err)
	}
	return nil
}

// restoreInterrupted moves records left in the processing list by an interrupted
// drain back to the head of the queue, oldest last, so they drain first and
// in their original order.
func (q *RedisQueue) restoreInterrupted(ctx context.Context) error {
	var moved int
	for {
		err := q.client.LMove(ctx, q.processing, q.key, "LEFT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return fmt.Errorf("recover %s: %w", q.processing, err)
		}
		moved++
	}

	if moved > 0 {
		q.logger.Warn("recovered interrupted offline records",
			logger.Int("count", moved),
		)
	}
	return nil
}
