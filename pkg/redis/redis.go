package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches completion replies keyed by normalized query so that a burst
// of identical questions costs one upstream call. Absence of the cache is
// never an error for callers.
type IRedis interface {
	GetReply(ctx context.Context, key string) (string, bool)
	SetReply(ctx context.Context, key string, reply string, expiration time.Duration) error
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(log *logrus.Logger) IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client, log: log}
}

func (r *redisClient) GetReply(ctx context.Context, key string) (string, bool) {
	reply, err := r.client.Get(ctx, "reply:"+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug(fmt.Sprintf("Reply cache read failed for %s: %v", key, err))
		}
		return "", false
	}
	return reply, true
}

func (r *redisClient) SetReply(ctx context.Context, key string, reply string, expiration time.Duration) error {
	if err := r.client.Set(ctx, "reply:"+key, reply, expiration).Err(); err != nil {
		r.log.Debug(fmt.Sprintf("Reply cache write failed for %s: %v", key, err))
		return err
	}
	return nil
}
