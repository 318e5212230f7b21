// Package query is the cache-aware read/write layer between the HTTP
// client and the UI controllers. Reads go through an injected cache with
// fetch coalescing; moderation actions invalidate every advertisement
// entry on success so the next read observes the new state.
//
// query 包是 HTTP 客户端与 UI 控制器之间的缓存感知读写层。
// 读取经过注入的缓存并合并并发获取；审核操作成功后使所有广告条目失效，
// 使下一次读取观察到新状态。
package query

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yourusername/admod/pkg/cache"
	"github.com/yourusername/admod/pkg/client"
	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

// API is the subset of the moderation backend the query layer consumes.
// *client.Client satisfies it; tests substitute a fake.
//
// API 是查询层所消费的审核后端子集。*client.Client 满足该接口；
// 测试中用伪实现替代。
type API interface {
	ListAdvertisements(ctx context.Context, page int, params liststate.Params) (*moderation.PageResult, error)
	GetAdvertisement(ctx context.Context, id int64) (*moderation.Advertisement, error)
	Approve(ctx context.Context, id int64) (*moderation.ActionResult, error)
	Reject(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error)
	RequestChanges(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error)
	StatsSummary(ctx context.Context) (*moderation.SummaryStats, error)
	StatsActivity(ctx context.Context) ([]moderation.ActivityPoint, error)
	StatsDecisions(ctx context.Context) (*moderation.DecisionStats, error)
	StatsCategories(ctx context.Context) (moderation.CategoryStats, error)
	CurrentModerator(ctx context.Context) (*moderation.Moderator, error)
}

// Default freshness windows. Details live longer than lists because a
// single advertisement changes only through moderation actions, which
// invalidate explicitly.
const (
	DefaultListTTL   = 30 * time.Second
	DefaultDetailTTL = 2 * time.Minute
)

// Queries coordinates cached reads and invalidating writes.
//
// Queries 协调带缓存的读取与触发失效的写入。
type Queries struct {
	api       API
	cache     cache.ICache
	group     singleflight.Group
	listTTL   time.Duration
	detailTTL time.Duration
	log       *zap.Logger
}

// QueryOption customizes a Queries service.
type QueryOption func(*Queries)

// WithListTTL sets the freshness window for list pages.
func WithListTTL(ttl time.Duration) QueryOption {
	return func(q *Queries) {
		if ttl > 0 {
			q.listTTL = ttl
		}
	}
}

// WithDetailTTL sets the freshness window for single advertisements.
func WithDetailTTL(ttl time.Duration) QueryOption {
	return func(q *Queries) {
		if ttl > 0 {
			q.detailTTL = ttl
		}
	}
}

// WithQueryLogger sets the structured logger. A nil logger is ignored.
func WithQueryLogger(log *zap.Logger) QueryOption {
	return func(q *Queries) {
		if log != nil {
			q.log = log
		}
	}
}

// New creates the query layer over an API and a cache.
//
// New 在一个 API 与一个缓存之上创建查询层。
//
// Parameters:
//   - api: the moderation backend, usually *client.Client.
//   - c: the cache backend, memory or Redis.
//   - options: optional TTL and logging overrides.
//
// Returns:
//   - *Queries: the ready service.
func New(api API, c cache.ICache, options ...QueryOption) *Queries {
	q := &Queries{
		api:       api,
		cache:     c,
		listTTL:   DefaultListTTL,
		detailTTL: DefaultDetailTTL,
		log:       zap.NewNop(),
	}
	for _, opt := range options {
		opt(q)
	}
	return q
}

// List returns one page of advertisements for the given filter state,
// serving from cache when fresh. Concurrent requests for the same key are
// coalesced into a single backend fetch.
//
// List 返回给定过滤状态下的一页广告，新鲜时直接从缓存提供。
// 同一键的并发请求合并为一次后端获取。
func (q *Queries) List(ctx context.Context, page int, params liststate.Params) (*moderation.PageResult, error) {
	if page < 1 {
		page = 1
	}
	key := ListKey(page, params)

	var cached moderation.PageResult
	if q.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	v, err, _ := q.group.Do(key, func() (interface{}, error) {
		result, err := q.api.ListAdvertisements(ctx, page, params)
		if err != nil {
			return nil, err
		}
		q.store(ctx, key, result, q.listTTL)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*moderation.PageResult), nil
}

// Detail returns a single advertisement by id, serving from cache when
// fresh. A non-positive id fails without touching cache or backend.
//
// Detail 按 id 返回单个广告，新鲜时从缓存提供。
// 非正 id 直接失败，不触碰缓存或后端。
func (q *Queries) Detail(ctx context.Context, id int64) (*moderation.Advertisement, error) {
	if id <= 0 {
		return nil, client.ErrInvalidID
	}
	key := DetailKey(id)

	var cached moderation.Advertisement
	if q.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	v, err, _ := q.group.Do(key, func() (interface{}, error) {
		ad, err := q.api.GetAdvertisement(ctx, id)
		if err != nil {
			return nil, err
		}
		q.store(ctx, key, ad, q.detailTTL)
		return ad, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*moderation.Advertisement), nil
}

// Approve approves an advertisement and invalidates every cached
// advertisement entry on success.
//
// Approve 批准一个广告，成功后使所有缓存的广告条目失效。
func (q *Queries) Approve(ctx context.Context, id int64) (*moderation.ActionResult, error) {
	result, err := q.api.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	q.invalidateAds(ctx)
	return result, nil
}

// Reject rejects an advertisement with the given decision and invalidates
// on success.
func (q *Queries) Reject(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error) {
	result, err := q.api.Reject(ctx, id, decision)
	if err != nil {
		return nil, err
	}
	q.invalidateAds(ctx)
	return result, nil
}

// RequestChanges sends the advertisement back to the seller for changes
// and invalidates on success.
func (q *Queries) RequestChanges(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error) {
	result, err := q.api.RequestChanges(ctx, id, decision)
	if err != nil {
		return nil, err
	}
	q.invalidateAds(ctx)
	return result, nil
}

// CurrentModerator returns the authenticated moderator profile. The
// profile is not cached.
func (q *Queries) CurrentModerator(ctx context.Context) (*moderation.Moderator, error) {
	return q.api.CurrentModerator(ctx)
}

// Invalidate drops every cached advertisement entry. Exposed for manual
// refresh flows.
//
// Invalidate 丢弃所有缓存的广告条目。用于手动刷新流程。
func (q *Queries) Invalidate(ctx context.Context) {
	q.invalidateAds(ctx)
}

func (q *Queries) invalidateAds(ctx context.Context) {
	n, err := q.cache.DeletePrefix(ctx, KeyPrefixAds)
	if err != nil {
		q.log.Warn("cache invalidation failed", zap.Error(err))
		return
	}
	q.log.Debug("cache invalidated", zap.Int("entries", n))
}

// lookup reads and decodes a cached entry. Cache failures degrade to a
// miss so a broken cache never blocks reads.
func (q *Queries) lookup(ctx context.Context, key string, out interface{}) bool {
	data, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		q.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		q.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// store encodes and writes a cache entry. Failures are logged and
// otherwise ignored.
func (q *Queries) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		q.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := q.cache.Set(ctx, key, data, ttl); err != nil {
		q.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
