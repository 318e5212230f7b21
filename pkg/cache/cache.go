// Package cache provides the injected cache service used by the query layer.
// It defines a small thread-safe interface over serialized entries, an
// in-memory implementation with TTL expiration and prefix invalidation, and
// a Redis-backed implementation for shared deployments.
//
// Package cache 提供查询层所用的注入式缓存服务。
// 它定义了针对序列化条目的精简线程安全接口、带 TTL 过期与前缀失效的
// 内存实现，以及用于共享部署的 Redis 实现。
package cache

import (
	"context"
	"time"
)

// ICache is the cache service contract. Values are opaque serialized bytes;
// callers own encoding. All methods are safe for concurrent use.
//
// ICache 是缓存服务契约。值是不透明的序列化字节，编码由调用方负责。
// 所有方法并发安全。
type ICache interface {
	// Get retrieves a value. The second result is false on a miss or when
	// the entry has expired.
	//
	// Get 检索值。未命中或条目已过期时第二个返回值为 false。
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL uses the cache's
	// default; a negative TTL stores the entry without expiration.
	//
	// Set 以给定 TTL 存储值。TTL 为零时使用缓存默认值；
	// 为负时条目不过期。
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a single entry. It reports whether the key existed.
	//
	// Delete 删除单个条目，并报告键是否存在。
	Delete(ctx context.Context, key string) (bool, error)

	// DeletePrefix removes every entry whose key starts with prefix and
	// returns the number removed. This is the invalidation API: after a
	// successful moderation mutation the query layer invalidates the whole
	// listing namespace in one call.
	//
	// DeletePrefix 删除所有以 prefix 开头的条目并返回删除数量。
	// 这是失效 API：审核变更成功后，查询层通过一次调用使整个
	// 广告命名空间失效。
	DeletePrefix(ctx context.Context, prefix string) (int, error)

	// Clear removes all entries.
	//
	// Clear 删除所有条目。
	Clear(ctx context.Context) error

	// Stats returns hit/miss/entry counters.
	//
	// Stats 返回命中/未命中/条目计数。
	Stats(ctx context.Context) (*Stats, error)

	// Close releases resources held by the cache.
	//
	// Close 释放缓存占用的资源。
	Close() error
}

// Stats holds cache counters.
//
// Stats 保存缓存计数。
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Entries   int64 `json:"entries"`
	Evictions int64 `json:"evictions"`
}
