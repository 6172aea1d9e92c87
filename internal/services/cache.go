package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AggregateKeys are the cache keys derived from requests, equipment and teams.
func AggregateKeys() []string {
	keys := []string{constants.CacheKeyDashboardStats}
	for _, name := range constants.Reports {
		keys = append(keys, fmt.Sprintf(constants.CacheKeyReport, name))
	}
	return keys
}

// AggregateInvalidator drops the cached aggregates in the caller's goroutine
// and then forwards the event, so a mutation's response is only sent once the
// next dashboard or report read is certain to recompute.
type AggregateInvalidator struct {
	cache  repositories.CacheRepositoryInterface
	next   EventPublisher
	logger *zap.Logger
}

func NewAggregateInvalidator(cache repositories.CacheRepositoryInterface, next EventPublisher, logger *zap.Logger) *AggregateInvalidator {
	return &AggregateInvalidator{cache: cache, next: next, logger: logger}
}

func (p *AggregateInvalidator) Publish(ctx context.Context, event eventbus.Event) {
	if p.cache != nil {
		// The epoch moves first so that loads started before the mutation
		// do not store their result after the delete.
		if err := p.cache.Set(ctx, constants.CacheKeyAggregateEpoch, uuid.NewString(), 0); err != nil {
			p.logger.Warn("aggregate epoch bump failed", zap.String("event", event.Name()), zap.Error(err))
		}
		if err := p.cache.Del(ctx, AggregateKeys()...); err != nil {
			p.logger.Warn("aggregate invalidation failed", zap.String("event", event.Name()), zap.Error(err))
		} else {
			p.logger.Debug("aggregates invalidated", zap.String("event", event.Name()))
		}
	}
	p.next.Publish(ctx, event)
}

// aggregateEpoch reports the current epoch; ok is false when the cache could
// not be read.
func aggregateEpoch(ctx context.Context, cache repositories.CacheRepositoryInterface) (epoch string, ok bool) {
	epoch, err := cache.Get(ctx, constants.CacheKeyAggregateEpoch)
	if err != nil && !errors.Is(err, repositories.ErrCacheMiss) {
		return "", false
	}
	return epoch, true
}

// cached returns the value stored under key or loads and stores it. Cache
// failures are logged and never fail the call. A loaded value is not stored
// when the aggregates were invalidated while it was being computed.
func cached[T any](
	ctx context.Context,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var before string
	var fresh bool
	if cache != nil {
		raw, err := cache.Get(ctx, key)
		switch {
		case err == nil:
			var value T
			if err := json.Unmarshal([]byte(raw), &value); err == nil {
				logger.Debug("cache hit", zap.String("key", key))
				return value, nil
			}
			logger.Warn("cached value is unreadable", zap.String("key", key))
		case !errors.Is(err, repositories.ErrCacheMiss):
			logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		before, fresh = aggregateEpoch(ctx, cache)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if cache == nil || ttl <= 0 || !fresh {
		return value, nil
	}
	if after, ok := aggregateEpoch(ctx, cache); !ok || after != before {
		logger.Debug("aggregates changed during load, not storing", zap.String("key", key))
		return value, nil
	}
	serialized, err := json.Marshal(value)
	if err == nil {
		err = cache.Set(ctx, key, serialized, ttl)
	}
	if err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
