package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

const (
	rewardsKey    = "laundry:rewards:active"
	summaryPrefix = "laundry:loyalty:summary:"
)

var errCacheMiss = errors.New("cache: not found")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(addr string, user string, pwd string) (serv *CacheService, err error) {
	if addr == "" {
		return nil, fmt.Errorf("cache address is not set")
	}
	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CacheService{db, 5 * time.Minute}, nil
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func (c *CacheService) get(ctx context.Context, key string, v any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return errCacheMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal(val, v)
}

func (c *CacheService) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Каталог наград
func (c *CacheService) GetRewards(ctx context.Context) (rewards []models.Reward, err error) {
	err = c.get(ctx, rewardsKey, &rewards)
	return rewards, err
}

func (c *CacheService) SetRewards(ctx context.Context, rewards []models.Reward) error {
	return c.set(ctx, rewardsKey, rewards)
}

func (c *CacheService) InvalidateRewards(ctx context.Context) error {
	return c.client.Del(ctx, rewardsKey).Err()
}

// Сводка по счету клиента для версии счета
func summaryKey(customerID string, version int64) string {
	return summaryPrefix + customerID + ":" + strconv.FormatInt(version, 10)
}

func (c *CacheService) GetSummary(ctx context.Context, customerID string, version int64) (summary models.LoyaltySummary, err error) {
	err = c.get(ctx, summaryKey(customerID, version), &summary)
	return summary, err
}

func (c *CacheService) SetSummary(ctx context.Context, customerID string, version int64, summary models.LoyaltySummary) error {
	return c.set(ctx, summaryKey(customerID, version), summary)
}
