package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/admod/pkg/moderation"
)

type fakeStatsService struct {
	statsErr error
	perms    []moderation.Permission
}

func (f *fakeStatsService) Stats(ctx context.Context) (*moderation.StatsSnapshot, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &moderation.StatsSnapshot{
		Summary:    &moderation.SummaryStats{TotalReviewed: 50},
		Activity:   []moderation.ActivityPoint{{Date: "2026-09-01", Approved: 2}},
		Categories: moderation.CategoryStats{"Транспорт": 5},
	}, nil
}

func (f *fakeStatsService) CurrentModerator(ctx context.Context) (*moderation.Moderator, error) {
	return &moderation.Moderator{ID: 1, Name: "Анна", Permissions: f.perms}, nil
}

func waitStats(t *testing.T, ch <-chan StatsView) StatsView {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case view := <-ch:
			if !view.Loading {
				return view
			}
		case <-deadline:
			t.Fatal("timed out waiting for a settled stats view")
		}
	}
}

func TestStatsRefresh(t *testing.T) {
	service := &fakeStatsService{perms: []moderation.Permission{moderation.PermViewStats}}
	updates := make(chan StatsView, 16)
	c := NewStatsController(service, WithStatsOnUpdate(func(v StatsView) { updates <- v }))

	c.Refresh(context.Background())
	view := waitStats(t, updates)

	if view.Err != nil {
		t.Fatalf("unexpected error: %v", view.Err)
	}
	if view.Stats == nil || view.Stats.Summary.TotalReviewed != 50 {
		t.Errorf("missing stats: %+v", view.Stats)
	}
	if view.Moderator == nil || view.Moderator.Name != "Анна" {
		t.Errorf("missing moderator: %+v", view.Moderator)
	}
	if !c.CanViewStats() {
		t.Error("expected view_stats permission")
	}
}

func TestStatsRefreshError(t *testing.T) {
	service := &fakeStatsService{statsErr: errors.New("stats backend down")}
	updates := make(chan StatsView, 16)
	c := NewStatsController(service, WithStatsOnUpdate(func(v StatsView) { updates <- v }))

	c.Refresh(context.Background())
	view := waitStats(t, updates)

	if view.Err == nil {
		t.Error("expected a surfaced error")
	}
	if c.CanViewStats() {
		t.Error("no moderator loaded, permission check must be false")
	}
}
