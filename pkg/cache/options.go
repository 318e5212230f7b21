package cache

import "time"

// Option configures the in-memory cache.
// This pattern allows flexible, readable construction of cache instances.
//
// Option 配置内存缓存。
// 这种模式允许灵活且可读地构建缓存实例。
type Option func(*memoryConfig)

type memoryConfig struct {
	maxEntries int
	defaultTTL time.Duration
}

// WithMaxEntries sets the maximum number of entries the cache can hold.
// When the cache is full, the least recently accessed entry is evicted.
// If set to 0, there is no limit.
//
// WithMaxEntries 设置缓存可容纳的最大条目数。
// 缓存已满时淘汰最久未访问的条目。设置为 0 表示不限制。
func WithMaxEntries(count int) Option {
	return func(c *memoryConfig) {
		c.maxEntries = count
	}
}

// WithDefaultTTL sets the TTL applied when Set is called with a zero TTL.
// If set to 0, entries stored with a zero TTL do not expire.
//
// WithDefaultTTL 设置当 Set 以零 TTL 调用时应用的 TTL。
// 设置为 0 时，以零 TTL 存储的条目不过期。
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *memoryConfig) {
		c.defaultTTL = ttl
	}
}
