package client

import (
	"context"
	"net/http"

	"github.com/yourusername/admod/pkg/moderation"
)

// StatsSummary fetches the aggregate review summary.
//
// StatsSummary 获取审核汇总统计。
func (c *Client) StatsSummary(ctx context.Context) (*moderation.SummaryStats, error) {
	var out moderation.SummaryStats
	if err := c.do(ctx, http.MethodGet, "/stats/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StatsActivity fetches the fixed-length daily activity series.
//
// StatsActivity 获取固定长度的每日活动序列。
func (c *Client) StatsActivity(ctx context.Context) ([]moderation.ActivityPoint, error) {
	var out []moderation.ActivityPoint
	if err := c.do(ctx, http.MethodGet, "/stats/chart/activity", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StatsDecisions fetches the decision-type breakdown.
//
// StatsDecisions 获取按决策类型的分布。
func (c *Client) StatsDecisions(ctx context.Context) (*moderation.DecisionStats, error) {
	var out moderation.DecisionStats
	if err := c.do(ctx, http.MethodGet, "/stats/chart/decisions", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StatsCategories fetches the per-category listing counts.
//
// StatsCategories 获取按类目的广告数量。
func (c *Client) StatsCategories(ctx context.Context) (moderation.CategoryStats, error) {
	out := moderation.CategoryStats{}
	if err := c.do(ctx, http.MethodGet, "/stats/chart/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentModerator fetches the authenticated moderator's profile and
// personal statistics. Permission fields are informational; nothing in this
// module hides actions based on them.
//
// CurrentModerator 获取当前审核员的档案与个人统计。
// 权限字段仅供参考；本模块不会据此隐藏操作。
func (c *Client) CurrentModerator(ctx context.Context) (*moderation.Moderator, error) {
	var out moderation.Moderator
	if err := c.do(ctx, http.MethodGet, "/moderators/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
