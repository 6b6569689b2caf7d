package data

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const streamResults = "lottery.results"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishResultEvent announces a lifecycle transition on the results stream
// so downstream consumers (ops bots, dashboards) can react without polling.
func PublishResultEvent(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	payload["event_id"] = uuid.NewString()
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamResults,
		Values: payload,
	}).Result()
	return err
}
