package mockapi

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

func TestSeedDeterministic(t *testing.T) {
	a := NewStore(42)
	b := NewStore(42)

	adA, _ := a.Get(7)
	adB, _ := b.Get(7)
	if adA.Title != adB.Title || !adA.Price.Equal(adB.Price) || adA.Status != adB.Status {
		t.Errorf("same seed produced different data: %+v vs %+v", adA, adB)
	}

	c := NewStore(43)
	same := 0
	for id := int64(1); id <= defaultSeedSize; id++ {
		x, _ := a.Get(id)
		y, _ := c.Get(id)
		if x.Title == y.Title && x.Price.Equal(y.Price) {
			same++
		}
	}
	if same == defaultSeedSize {
		t.Error("different seeds produced identical data")
	}
}

func TestListFilters(t *testing.T) {
	store := NewStore(42)

	pending := store.List(1, 100, liststate.Params{Statuses: []moderation.Status{moderation.StatusPending}})
	for _, ad := range pending.Ads {
		if ad.Status != moderation.StatusPending {
			t.Errorf("status filter leaked %q", ad.Status)
		}
	}

	category := 2
	byCategory := store.List(1, 100, liststate.Params{CategoryID: &category})
	if len(byCategory.Ads) == 0 {
		t.Fatal("expected transport ads in the seed")
	}
	for _, ad := range byCategory.Ads {
		if ad.CategoryID != category {
			t.Errorf("category filter leaked %d", ad.CategoryID)
		}
	}

	min := decimal.NewFromInt(50000)
	priced := store.List(1, 100, liststate.Params{MinPrice: &min})
	for _, ad := range priced.Ads {
		if ad.Price.LessThan(min) {
			t.Errorf("price filter leaked %s", ad.Price)
		}
	}

	// Search for a known title fragment, in the wrong case to cover the
	// case-insensitive match.
	first, _ := store.Get(1)
	runes := []rune(first.Title)
	needle := strings.ToUpper(string(runes[:len(runes)/2]))
	searched := store.List(1, 100, liststate.Params{Search: needle})
	if len(searched.Ads) == 0 {
		t.Fatal("expected search matches for a known title fragment")
	}
	for _, ad := range searched.Ads {
		haystack := strings.ToLower(ad.Title + " " + ad.Description)
		if !strings.Contains(haystack, strings.ToLower(needle)) {
			t.Errorf("search leaked %q", ad.Title)
		}
	}
}

func TestListSortAndPaginate(t *testing.T) {
	store := NewStore(42)

	asc := store.List(1, 100, liststate.Params{SortBy: liststate.SortByPrice, SortOrder: liststate.OrderAsc})
	for i := 1; i < len(asc.Ads); i++ {
		if asc.Ads[i].Price.LessThan(asc.Ads[i-1].Price) {
			t.Fatalf("ascending price order violated at %d", i)
		}
	}

	// Default sort is newest first.
	recent := store.List(1, 100, liststate.Params{})
	for i := 1; i < len(recent.Ads); i++ {
		if recent.Ads[i].CreatedAt.After(recent.Ads[i-1].CreatedAt) {
			t.Fatalf("descending creation order violated at %d", i)
		}
	}

	page2 := store.List(2, 10, liststate.Params{})
	if page2.Pagination.CurrentPage != 2 {
		t.Errorf("unexpected current page %d", page2.Pagination.CurrentPage)
	}
	if page2.Pagination.TotalItems != defaultSeedSize {
		t.Errorf("unexpected total %d", page2.Pagination.TotalItems)
	}
	if page2.Pagination.TotalPages != defaultSeedSize/10 {
		t.Errorf("unexpected page count %d", page2.Pagination.TotalPages)
	}
	if len(page2.Ads) != 10 {
		t.Errorf("unexpected page size %d", len(page2.Ads))
	}
	if page2.Ads[0].ID == recent.Ads[0].ID {
		t.Error("page 2 repeats page 1")
	}

	// A page past the end degrades to the last page instead of echoing the
	// out-of-range number back.
	beyond := store.List(99, 10, liststate.Params{})
	if beyond.Pagination.CurrentPage != beyond.Pagination.TotalPages {
		t.Errorf("out-of-range page must clamp to the last page, got %d of %d",
			beyond.Pagination.CurrentPage, beyond.Pagination.TotalPages)
	}
	if len(beyond.Ads) == 0 {
		t.Error("clamped page must carry the last page's ads")
	}
	if err := beyond.Pagination.Validate(); err != nil {
		t.Errorf("clamped pagination must validate: %v", err)
	}

	// An empty result set still reports page 1 of at least one page.
	impossible := decimal.NewFromInt(1)
	empty := store.List(5, 10, liststate.Params{MaxPrice: &impossible, MinPrice: &impossible, Search: "нет такого"})
	if empty.Pagination.CurrentPage != 1 {
		t.Errorf("empty result must clamp to page 1, got %d", empty.Pagination.CurrentPage)
	}
	if err := empty.Pagination.Validate(); err != nil {
		t.Errorf("empty-set pagination must validate: %v", err)
	}
}

func TestApplyAction(t *testing.T) {
	store := NewStore(42)
	fixed := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	before, _ := store.Get(3)
	historyLen := len(before.ModerationHistory)

	result, ok := store.Apply(3, moderation.ActionReject, moderation.Decision{
		Reason:  moderation.ReasonWrongCategory,
		Comment: "перенесите в транспорт",
	})
	if !ok {
		t.Fatal("Apply failed on an existing ad")
	}
	if result.Status != moderation.StatusRejected {
		t.Errorf("unexpected result status %q", result.Status)
	}

	after, _ := store.Get(3)
	if after.Status != moderation.StatusRejected {
		t.Errorf("status not updated: %q", after.Status)
	}
	if len(after.ModerationHistory) != historyLen+1 {
		t.Fatalf("history not appended: %d", len(after.ModerationHistory))
	}
	last := after.ModerationHistory[len(after.ModerationHistory)-1]
	if last.Reason != moderation.ReasonWrongCategory || !last.Timestamp.Equal(fixed) {
		t.Errorf("unexpected history entry: %+v", last)
	}
	if !after.UpdatedAt.Equal(fixed) {
		t.Errorf("updatedAt not bumped: %v", after.UpdatedAt)
	}

	if _, ok := store.Apply(9999, moderation.ActionApprove, moderation.Decision{}); ok {
		t.Error("Apply on a missing ad must fail")
	}
}

func TestDerivedStats(t *testing.T) {
	store := NewStore(42)
	fixed := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	store.Apply(1, moderation.ActionApprove, moderation.Decision{})
	store.Apply(2, moderation.ActionReject, moderation.Decision{Reason: moderation.ReasonOther})

	summary := store.Summary()
	decisions := store.Decisions()
	if summary.TotalReviewed != decisions.Approved+decisions.Rejected+decisions.RequestChanges {
		t.Errorf("summary and decisions disagree: %+v vs %+v", summary, decisions)
	}
	if summary.TotalReviewedToday < 2 {
		t.Errorf("today's actions missing from summary: %d", summary.TotalReviewedToday)
	}

	activity := store.Activity()
	if len(activity) != 7 {
		t.Fatalf("expected a seven-day series, got %d", len(activity))
	}
	today := activity[6]
	if today.Date != "2026-09-01" {
		t.Errorf("series must end today, got %s", today.Date)
	}
	if today.Approved < 1 || today.Rejected < 1 {
		t.Errorf("today's decisions missing from series: %+v", today)
	}

	categories := store.Categories()
	if len(categories) != len(moderation.Categories()) {
		t.Errorf("every category must be present, got %d", len(categories))
	}
	total := 0
	for _, n := range categories {
		total += n
	}
	if total != defaultSeedSize {
		t.Errorf("category counts must cover the dataset: %d", total)
	}
}

func TestModeratorProfile(t *testing.T) {
	store := NewStore(42)
	m := store.Moderator()
	if m.Name == "" || len(m.Permissions) != 4 {
		t.Errorf("unexpected profile: %+v", m)
	}
	if !m.Can(moderation.PermViewStats) {
		t.Error("expected view_stats permission")
	}
}
