package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PurchaseRequestsKeyPrefix keys every cached "pending requests" view.
const PurchaseRequestsKeyPrefix = "purchase_requests_"

// Invalidator drops cached views by key prefix. Invalidation is a hint
// to collaborators, not a correctness requirement, so every failure is
// logged and swallowed.
type Invalidator struct {
	client *redis.Client
}

func New(client *redis.Client) *Invalidator {
	return &Invalidator{client: client}
}

// Connect builds a redis client and verifies the connection. An empty
// address disables invalidation entirely.
func Connect(ctx context.Context, address string) (*redis.Client, error) {
	if address == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

func (i *Invalidator) Invalidate(ctx context.Context, keyPrefix string) {
	if i == nil || i.client == nil {
		return
	}

	iter := i.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("cache scan failed", zap.String("prefix", keyPrefix), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("cache invalidation failed", zap.String("prefix", keyPrefix), zap.Error(err))
		return
	}
	zap.L().Debug("cache invalidated", zap.String("prefix", keyPrefix), zap.Int("keys", len(keys)))
}
