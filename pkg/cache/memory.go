package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Memory is the in-memory ICache implementation. It is a mutex-guarded map
// with per-entry expiration, least-recently-accessed eviction when over
// capacity, and hit/miss counters.
//
// Memory 是 ICache 的内存实现。它是带互斥锁保护的 map，
// 支持按条目过期、超出容量时按最久未访问淘汰，并维护命中/未命中计数。
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	defaultTTL time.Duration
	stats      Stats
	closed     bool
}

type memoryEntry struct {
	value    []byte
	expireAt time.Time // zero means never / 零值表示永不过期
	accessed time.Time
}

// NewMemory creates a new in-memory cache.
//
// NewMemory 创建一个新的内存缓存。
//
// Parameters:
//   - options: Functional options controlling capacity and default TTL
//
// Returns:
//   - *Memory: A new cache instance
func NewMemory(options ...Option) *Memory {
	cfg := memoryConfig{}
	for _, option := range options {
		option(&cfg)
	}
	return &Memory{
		entries:    make(map[string]memoryEntry),
		maxEntries: cfg.maxEntries,
		defaultTTL: cfg.defaultTTL,
	}
}

// Get retrieves a value. Expired entries are removed lazily on access.
//
// Get 检索值。过期条目在访问时被惰性删除。
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := m.check(ctx); err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		m.stats.Misses++
		return nil, false, nil
	}
	if !entry.expireAt.IsZero() && time.Now().After(entry.expireAt) {
		delete(m.entries, key)
		m.stats.Misses++
		return nil, false, nil
	}

	entry.accessed = time.Now()
	m.entries[key] = entry
	m.stats.Hits++

	// Copy so callers cannot mutate the stored bytes.
	// 复制以防调用方修改存储的字节。
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores a value, evicting the least recently accessed entry when the
// cache is at capacity.
//
// Set 存储值；缓存达到容量上限时淘汰最久未访问的条目。
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := m.check(ctx); err != nil {
		return err
	}
	if ttl == 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxEntries > 0 {
		if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
			m.evictOldest()
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	entry := memoryEntry{value: stored, accessed: time.Now()}
	if ttl > 0 {
		entry.expireAt = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	m.stats.Entries = int64(len(m.entries))
	return nil
}

// Delete removes one entry.
//
// Delete 删除一个条目。
func (m *Memory) Delete(ctx context.Context, key string) (bool, error) {
	if err := m.check(ctx); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; !ok {
		return false, nil
	}
	delete(m.entries, key)
	m.stats.Entries = int64(len(m.entries))
	return true, nil
}

// DeletePrefix removes every entry whose key starts with prefix.
//
// DeletePrefix 删除所有以 prefix 开头的条目。
func (m *Memory) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	if err := m.check(ctx); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
			removed++
		}
	}
	m.stats.Entries = int64(len(m.entries))
	return removed, nil
}

// Clear removes all entries.
//
// Clear 删除所有条目。
func (m *Memory) Clear(ctx context.Context) error {
	if err := m.check(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	m.stats.Entries = 0
	return nil
}

// Stats returns a copy of the counters.
//
// Stats 返回计数的副本。
func (m *Memory) Stats(ctx context.Context) (*Stats, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := m.stats
	out.Entries = int64(len(m.entries))
	return &out, nil
}

// Close marks the cache closed and drops its entries.
//
// Close 标记缓存已关闭并丢弃其条目。
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.entries = nil
	return nil
}

func (m *Memory) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

// evictOldest removes the least recently accessed entry. Caller holds the
// write lock.
//
// evictOldest 删除最久未访问的条目。调用方须持有写锁。
func (m *Memory) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, entry := range m.entries {
		if first || entry.accessed.Before(oldest) {
			oldest = entry.accessed
			oldestKey = key
			first = false
		}
	}
	if oldestKey != "" {
		delete(m.entries, oldestKey)
		m.stats.Evictions++
	}
}
