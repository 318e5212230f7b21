package query

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/admod/pkg/moderation"
)

// Stats fetches the four statistics feeds concurrently and assembles a
// snapshot. Summary, activity and categories are required; a failing
// decisions feed leaves Decisions nil instead of failing the composite,
// since the decisions chart is an optional panel.
//
// Stats 并发获取四路统计数据并组装快照。summary、activity、categories
// 为必需；decisions 获取失败时将 Decisions 置空而不使整体失败，
// 因为决策图表是可选面板。
func (q *Queries) Stats(ctx context.Context) (*moderation.StatsSnapshot, error) {
	snapshot := &moderation.StatsSnapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := q.api.StatsSummary(gctx)
		if err != nil {
			return err
		}
		snapshot.Summary = summary
		return nil
	})
	g.Go(func() error {
		activity, err := q.api.StatsActivity(gctx)
		if err != nil {
			return err
		}
		snapshot.Activity = activity
		return nil
	})
	g.Go(func() error {
		categories, err := q.api.StatsCategories(gctx)
		if err != nil {
			return err
		}
		snapshot.Categories = categories
		return nil
	})
	g.Go(func() error {
		decisions, err := q.api.StatsDecisions(gctx)
		if err != nil {
			q.log.Warn("decisions feed unavailable", zap.Error(err))
			return nil
		}
		snapshot.Decisions = decisions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
