package board

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/admod/pkg/moderation"
)

// StatsService is the slice of the query layer the dashboard needs.
// *query.Queries satisfies it.
type StatsService interface {
	Stats(ctx context.Context) (*moderation.StatsSnapshot, error)
	CurrentModerator(ctx context.Context) (*moderation.Moderator, error)
}

// StatsView is one published view of the dashboard. Decisions may be nil
// when that feed is unavailable; the panel is simply omitted.
//
// StatsView 是统计面板的一次发布视图。decisions 数据源不可用时
// Decisions 可能为空；对应面板直接省略。
type StatsView struct {
	Stats     *moderation.StatsSnapshot
	Moderator *moderation.Moderator
	Loading   bool
	Err       error
}

// StatsController drives the statistics dashboard: the composite stats
// fetch plus the current moderator profile for the permissions banner.
//
// StatsController 驱动统计面板：组合统计获取加上用于权限横幅的
// 当前审核员档案。
type StatsController struct {
	mu         sync.Mutex
	service    StatsService
	view       StatsView
	generation uint64
	onUpdate   func(StatsView)
	log        *zap.Logger
}

// StatsOption customizes a StatsController.
type StatsOption func(*StatsController)

// WithStatsOnUpdate registers a view callback. It runs outside the
// controller lock.
func WithStatsOnUpdate(fn func(StatsView)) StatsOption {
	return func(c *StatsController) {
		c.onUpdate = fn
	}
}

// WithStatsLogger sets the structured logger. A nil logger is ignored.
func WithStatsLogger(log *zap.Logger) StatsOption {
	return func(c *StatsController) {
		if log != nil {
			c.log = log
		}
	}
}

// NewStatsController creates a dashboard controller over a service. Call
// Refresh to load.
func NewStatsController(service StatsService, options ...StatsOption) *StatsController {
	c := &StatsController{
		service: service,
		log:     zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// View returns a copy of the current dashboard state.
func (c *StatsController) View() StatsView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// CanViewStats reports whether the loaded moderator may see the
// dashboard. Callers decide what to render when it is false; nothing is
// enforced here.
//
// CanViewStats 报告已加载的审核员是否可以查看面板。
// 为 false 时渲染什么由调用方决定；这里不做强制。
func (c *StatsController) CanViewStats() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Moderator != nil && c.view.Moderator.Can(moderation.PermViewStats)
}

// Refresh starts an asynchronous load of the dashboard. The stats
// composite and the moderator profile are fetched together; a newer
// refresh supersedes the response of an older one.
//
// Refresh 异步加载统计面板。组合统计与审核员档案一并获取；
// 较新的刷新会取代较旧刷新的响应。
func (c *StatsController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.view.Loading = true
	view := c.view
	c.mu.Unlock()
	c.publish(view)

	go func() {
		stats, statsErr := c.service.Stats(ctx)
		moderator, modErr := c.service.CurrentModerator(ctx)

		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			return
		}
		c.view.Loading = false
		switch {
		case statsErr != nil:
			c.view.Err = statsErr
			c.log.Warn("stats load failed", zap.Error(statsErr))
		case modErr != nil:
			c.view.Err = modErr
			c.log.Warn("moderator profile load failed", zap.Error(modErr))
		default:
			c.view.Err = nil
			c.view.Stats = stats
			c.view.Moderator = moderator
		}
		view := c.view
		c.mu.Unlock()
		c.publish(view)
	}()
}

func (c *StatsController) publish(view StatsView) {
	if c.onUpdate != nil {
		c.onUpdate(view)
	}
}
