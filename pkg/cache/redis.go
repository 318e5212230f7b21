package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is an ICache implementation backed by a Redis server. Keys are
// namespaced with a prefix so several tools can share one instance.
// DeletePrefix walks the namespace with SCAN rather than KEYS, so it is safe
// on shared servers.
//
// Redis 是基于 Redis 服务端的 ICache 实现。键带前缀命名空间，
// 便于多个工具共享同一实例。DeletePrefix 使用 SCAN 而非 KEYS 遍历
// 命名空间，在共享服务端上是安全的。
type Redis struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// RedisOptions configures the Redis cache backend.
//
// RedisOptions 配置 Redis 缓存后端。
type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	Prefix     string
	DefaultTTL time.Duration
}

// NewRedis creates a Redis-backed cache and verifies connectivity.
//
// NewRedis 创建 Redis 缓存并校验连通性。
//
// Parameters:
//   - ctx: Context used for the connectivity check
//   - options: Connection and namespace settings
//
// Returns:
//   - *Redis: A new cache instance
//   - error: An error if the server is unreachable
func NewRedis(ctx context.Context, options RedisOptions) (*Redis, error) {
	addr := strings.TrimSpace(options.Addr)
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	prefix := strings.TrimSpace(options.Prefix)
	if prefix == "" {
		prefix = "admod"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: options.Password,
		DB:       options.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Redis{
		client:     client,
		prefix:     prefix,
		defaultTTL: options.DefaultTTL,
	}, nil
}

// Get retrieves a value.
//
// Get 检索值。
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.buildKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a value. A zero TTL uses the configured default; a negative TTL
// stores without expiration.
//
// Set 存储值。TTL 为零时使用配置的默认值；为负时不过期。
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = r.defaultTTL
	}
	if ttl < 0 {
		ttl = 0 // redis: zero expiration means keep forever / redis 中零过期表示永久保留
	}
	return r.client.Set(ctx, r.buildKey(key), value, ttl).Err()
}

// Delete removes one entry.
//
// Delete 删除一个条目。
func (r *Redis) Delete(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, r.buildKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeletePrefix removes every entry in the namespace whose key starts with
// prefix.
//
// DeletePrefix 删除命名空间内所有以 prefix 开头的条目。
func (r *Redis) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	pattern := r.buildKey(prefix) + "*"
	removed := 0

	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		n, err := r.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return removed, err
		}
		removed += int(n)
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, nil
}

// Clear removes every entry in the namespace.
//
// Clear 删除命名空间内的所有条目。
func (r *Redis) Clear(ctx context.Context) error {
	_, err := r.DeletePrefix(ctx, "")
	return err
}

// Stats reports the entry count for the namespace. Hit and miss counters are
// not tracked by this backend.
//
// Stats 报告命名空间内的条目数量。此后端不跟踪命中/未命中计数。
func (r *Redis) Stats(ctx context.Context) (*Stats, error) {
	entries := int64(0)
	iter := r.client.Scan(ctx, 0, r.buildKey("")+"*", 100).Iterator()
	for iter.Next(ctx) {
		entries++
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return &Stats{Entries: entries}, nil
}

// Close closes the underlying client.
//
// Close 关闭底层客户端。
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) buildKey(key string) string {
	if key == "" {
		return r.prefix + ":"
	}
	return fmt.Sprintf("%s:%s", r.prefix, key)
}
