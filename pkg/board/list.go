// Package board holds the view controllers of the moderation back office:
// the filtered listing, the advertisement detail with its decision flow,
// and the statistics dashboard. Controllers own UI state, talk to the
// query layer, and publish immutable snapshots; loads are asynchronous
// and generation-guarded so a stale response can never overwrite a newer
// one.
//
// board 包承载审核后台的视图控制器：过滤列表、带决策流程的广告详情
// 以及统计面板。控制器持有 UI 状态，与查询层交互并发布不可变快照；
// 加载是异步且带代号保护的，过期响应永远不会覆盖更新的响应。
package board

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

// ListLoader is the read side the list controller needs. *query.Queries
// satisfies it.
//
// ListLoader 是列表控制器需要的读取端。*query.Queries 满足该接口。
type ListLoader interface {
	List(ctx context.Context, page int, params liststate.Params) (*moderation.PageResult, error)
}

// ListSnapshot is one published view of the listing. While a reload is in
// flight the previous page stays visible with Stale set, matching the
// keep-previous-data behavior of the query cache.
//
// ListSnapshot 是列表的一次发布视图。重新加载进行中时，上一页内容
// 保持可见并置 Stale 位，与查询缓存的保留旧数据行为一致。
type ListSnapshot struct {
	Ads        []moderation.Advertisement
	Pagination moderation.Pagination
	Loading    bool
	Stale      bool
	Err        error
}

// ListController drives the filtered, paginated listing. All state
// transitions go through it; the URL query form of the state is available
// at any time for history synchronization.
//
// ListController 驱动带过滤与分页的列表。所有状态变迁都经由它；
// 状态的 URL 查询形式随时可取，用于历史记录同步。
type ListController struct {
	mu         sync.Mutex
	loader     ListLoader
	state      liststate.State
	snapshot   ListSnapshot
	generation uint64
	search     *liststate.SearchDebouncer
	searchCtx  context.Context
	onUpdate   func(ListSnapshot)
	log        *zap.Logger

	searchDelayOverride time.Duration
}

// ListOption customizes a ListController.
type ListOption func(*ListController)

// WithInitialQuery seeds the controller state from a URL query, as when
// the page is opened through a shared link.
func WithInitialQuery(values url.Values) ListOption {
	return func(c *ListController) {
		c.state = liststate.FromQuery(values)
	}
}

// WithOnUpdate registers a callback invoked with every published
// snapshot. The callback runs outside the controller lock.
func WithOnUpdate(fn func(ListSnapshot)) ListOption {
	return func(c *ListController) {
		c.onUpdate = fn
	}
}

// WithSearchDelay overrides the search debounce delay.
func WithSearchDelay(delay time.Duration) ListOption {
	return func(c *ListController) {
		c.searchDelayOverride = delay
	}
}

// WithListLogger sets the structured logger. A nil logger is ignored.
func WithListLogger(log *zap.Logger) ListOption {
	return func(c *ListController) {
		if log != nil {
			c.log = log
		}
	}
}

// NewListController creates a list controller over a loader. The initial
// state is the default filter unless WithInitialQuery supplies one; call
// Refresh to perform the first load.
//
// NewListController 在一个加载器之上创建列表控制器。除非 WithInitialQuery
// 提供初始状态，否则使用默认过滤；调用 Refresh 执行首次加载。
//
// Parameters:
//   - loader: the read side, usually *query.Queries.
//   - options: optional initial query, update callback, logger.
//
// Returns:
//   - *ListController: the ready controller.
func NewListController(loader ListLoader, options ...ListOption) *ListController {
	c := &ListController{
		loader:    loader,
		state:     liststate.NewState(),
		searchCtx: context.Background(),
		log:       zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	delay := liststate.DefaultSearchDelay
	if c.searchDelayOverride > 0 {
		delay = c.searchDelayOverride
	}
	c.search = liststate.NewSearchDebouncer(c.state.Params.Search, delay, c.commitSearch)
	return c
}

// Snapshot returns a copy of the current view state.
func (c *ListController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// State returns a copy of the current filter state.
func (c *ListController) State() liststate.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Query returns the URL query encoding of the current state, for pushing
// into browser history.
func (c *ListController) Query() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Query()
}

// VisibleIDs returns the ids of the currently displayed page in display
// order, the sequence handed to the detail view for prev/next navigation.
//
// VisibleIDs 按展示顺序返回当前页的广告 id，
// 即传给详情视图用于前后导航的序列。
func (c *ListController) VisibleIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, 0, len(c.snapshot.Ads))
	for _, ad := range c.snapshot.Ads {
		ids = append(ids, ad.ID)
	}
	return ids
}

// PageWindow returns the pagination window for the current snapshot.
func (c *ListController) PageWindow() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return liststate.PageWindow(c.snapshot.Pagination.CurrentPage, c.snapshot.Pagination.TotalPages)
}

// Refresh starts an asynchronous load of the current state.
func (c *ListController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.reloadLocked(ctx)
	c.mu.Unlock()
}

// ToggleStatus adds or removes a status filter and reloads from page one.
//
// ToggleStatus 添加或移除一个状态过滤并从第一页重新加载。
func (c *ListController) ToggleStatus(ctx context.Context, status moderation.Status) {
	c.mutate(ctx, func() { c.state.ToggleStatus(status) })
}

// SetCategory sets or clears the category filter and reloads from page
// one. Category id 0 is a valid selection.
func (c *ListController) SetCategory(ctx context.Context, id *int) {
	c.mutate(ctx, func() { c.state.SetCategory(id) })
}

// SetMinPrice sets or clears the minimum price and reloads from page one.
func (c *ListController) SetMinPrice(ctx context.Context, d *decimal.Decimal) {
	c.mutate(ctx, func() { c.state.SetMinPrice(d) })
}

// SetMaxPrice sets or clears the maximum price and reloads from page one.
func (c *ListController) SetMaxPrice(ctx context.Context, d *decimal.Decimal) {
	c.mutate(ctx, func() { c.state.SetMaxPrice(d) })
}

// SetSortBy changes the sort field and reloads. The current page is kept.
func (c *ListController) SetSortBy(ctx context.Context, field liststate.SortField) {
	c.mutate(ctx, func() { c.state.SetSortBy(field) })
}

// SetSortOrder changes the sort direction and reloads. The current page is
// kept.
func (c *ListController) SetSortOrder(ctx context.Context, order liststate.SortOrder) {
	c.mutate(ctx, func() { c.state.SetSortOrder(order) })
}

// SetPage navigates to a page, clamped to the known page range, and
// reloads.
func (c *ListController) SetPage(ctx context.Context, page int) {
	c.mutate(ctx, func() { c.state.SetPage(page, c.snapshot.Pagination.TotalPages) })
}

// Reset drops every filter and reloads from page one.
func (c *ListController) Reset(ctx context.Context) {
	c.mutate(ctx, func() { c.state.Reset() })
	c.search.Resync("")
}

// SetSearchDraft records a keystroke in the search box. The commit to the
// filter state happens after the debounce delay; each keystroke restarts
// the timer.
//
// SetSearchDraft 记录搜索框中的一次按键。向过滤状态的提交发生在
// 防抖延迟之后；每次按键都会重启计时器。
func (c *ListController) SetSearchDraft(ctx context.Context, value string) {
	c.mu.Lock()
	c.searchCtx = ctx
	c.mu.Unlock()
	c.search.SetDraft(value)
}

// SearchDraft returns the text currently shown in the search box, which
// may be ahead of the committed filter.
func (c *ListController) SearchDraft() string {
	return c.search.Draft()
}

// FlushSearch commits a pending search draft immediately, as on Enter.
func (c *ListController) FlushSearch() {
	c.search.Flush()
}

// SyncFromQuery adopts an externally changed URL query, as on browser
// back/forward, then reloads. A pending search draft is discarded in
// favor of the adopted value.
//
// SyncFromQuery 采纳外部变更的 URL 查询（如浏览器前进/后退）并重新加载。
// 未提交的搜索草稿被采纳值取代。
func (c *ListController) SyncFromQuery(ctx context.Context, values url.Values) {
	c.mu.Lock()
	next := liststate.FromQuery(values)
	changed := next.Page != c.state.Page || !next.Params.Equal(c.state.Params)
	c.state = next
	if changed {
		c.reloadLocked(ctx)
	}
	c.mu.Unlock()
	c.search.Resync(next.Params.Search)
}

// Close stops the search debounce timer.
func (c *ListController) Close() {
	c.search.Stop()
}

// commitSearch is the debouncer callback. It runs on the timer goroutine.
func (c *ListController) commitSearch(value string) {
	c.mu.Lock()
	ctx := c.searchCtx
	c.state.CommitSearch(value)
	c.reloadLocked(ctx)
	c.mu.Unlock()
}

// mutate applies a state transition and reloads under one lock hold.
func (c *ListController) mutate(ctx context.Context, apply func()) {
	c.mu.Lock()
	apply()
	c.reloadLocked(ctx)
	c.mu.Unlock()
}

// reloadLocked starts an asynchronous load of the state as of now. The
// caller holds c.mu. Each call supersedes any in-flight load: a response
// whose generation is no longer current is dropped.
//
// reloadLocked 异步加载当前时刻的状态。调用方持有 c.mu。
// 每次调用都会取代在途加载：代号已过期的响应会被丢弃。
func (c *ListController) reloadLocked(ctx context.Context) {
	c.generation++
	gen := c.generation
	page := c.state.Page
	params := c.state.Params

	c.snapshot.Loading = true
	c.snapshot.Stale = len(c.snapshot.Ads) > 0
	snap := c.snapshot
	go c.publish(snap)

	go func() {
		result, err := c.loader.List(ctx, page, params)

		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			c.log.Debug("dropped superseded page load", zap.Int("page", page))
			return
		}
		c.snapshot.Loading = false
		c.snapshot.Stale = false
		if err != nil {
			c.snapshot.Err = err
			c.log.Warn("page load failed", zap.Int("page", page), zap.Error(err))
		} else {
			c.snapshot.Err = nil
			c.snapshot.Ads = result.Ads
			c.snapshot.Pagination = result.Pagination
		}
		snap := c.snapshot
		c.mu.Unlock()
		c.publish(snap)
	}()
}

func (c *ListController) publish(snap ListSnapshot) {
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
}
