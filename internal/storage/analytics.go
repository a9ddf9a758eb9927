package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

// RedisAnalytics tracks daily order counters for the kitchen dashboard.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

// RecordOrder bumps the day's order count, revenue and per-pizza
// popularity scores. Keys expire after a week.
func (a *RedisAnalytics) RecordOrder(ctx context.Context, evt domain.OrderEvent) error {
	day := evt.Timestamp.Format("2006-01-02")
	countKey := fmt.Sprintf("analytics:orders:%s", day)
	revenueKey := fmt.Sprintf("analytics:revenue:%s", day)
	popularKey := fmt.Sprintf("analytics:popular:%s", day)

	if err := a.Client.Incr(ctx, countKey).Err(); err != nil {
		return err
	}
	if err := a.Client.IncrBy(ctx, revenueKey, int64(evt.Total)).Err(); err != nil {
		return err
	}
	for _, item := range evt.Items {
		a.Client.ZIncrBy(ctx, popularKey, float64(item.Quantity), strconv.Itoa(item.PizzaID))
	}

	a.Client.Expire(ctx, countKey, 7*24*time.Hour)
	a.Client.Expire(ctx, revenueKey, 7*24*time.Hour)
	a.Client.Expire(ctx, popularKey, 7*24*time.Hour)

	return nil
}
