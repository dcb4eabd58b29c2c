package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the short-lived shared state: search result caching
// and one-time OTP codes with TTL expiry.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string) *RedisCache {
	if addr == "" {
		addr = "localhost:6379"
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

// GetCached loads a JSON value into dest. Returns false on a clean miss.
func (c *RedisCache) GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

// SetCached stores a JSON value with a TTL.
func (c *RedisCache) SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// SetOTP stores a one-time code for a phone number.
func (c *RedisCache) SetOTP(ctx context.Context, phone, code string, ttl time.Duration) error {
	return c.client.Set(ctx, "otp:"+phone, code, ttl).Err()
}

// GetOTP returns the pending code for a phone number, or "" if none.
func (c *RedisCache) GetOTP(ctx context.Context, phone string) (string, error) {
	code, err := c.client.Get(ctx, "otp:"+phone).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *RedisCache) DeleteOTP(ctx context.Context, phone string) error {
	return c.client.Del(ctx, "otp:"+phone).Err()
}

// QueryKey builds a stable cache key from query parameters: keys are
// sorted before hashing so parameter order doesn't change the key.
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
