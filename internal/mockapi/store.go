// Package mockapi implements an in-memory moderation backend for
// development and integration testing. It serves the same endpoints and
// semantics as the production API over deterministic seeded data, so
// tests and examples behave identically from run to run.
//
// mockapi 包实现用于开发与集成测试的内存审核后端。
// 它基于确定性的种子数据提供与生产API相同的端点和语义，
// 使测试和示例每次运行的行为一致。
package mockapi

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

const defaultSeedSize = 60

// The fixed moderator used for seeded history and /moderators/me.
var currentModerator = moderation.Moderator{
	ID:    1,
	Name:  "Анна Смирнова",
	Email: "anna.smirnova@example.com",
	Role:  "senior_moderator",
	Permissions: []moderation.Permission{
		moderation.PermApproveAds,
		moderation.PermRejectAds,
		moderation.PermRequestChanges,
		moderation.PermViewStats,
	},
}

var adTitles = map[int][]string{
	0: {"Смартфон Samsung Galaxy", "Ноутбук Lenovo ThinkPad", "Наушники Sony", "Телевизор LG 55\"", "Планшет Apple iPad"},
	1: {"2-комнатная квартира в центре", "Дом с участком 10 соток", "Студия рядом с метро", "Гараж в кооперативе", "Офисное помещение 40 м²"},
	2: {"Toyota Camry 2019", "Велосипед горный Trek", "Мотоцикл Yamaha", "Lada Vesta, один владелец", "Зимняя резина R17"},
	3: {"Требуется курьер", "Вакансия повара", "Менеджер по продажам", "Ищу подработку на выходные", "Водитель категории B"},
	4: {"Ремонт квартир под ключ", "Репетитор по математике", "Фотограф на мероприятие", "Клининг после ремонта", "Перевозка мебели"},
	5: {"Щенки лабрадора", "Котята мейн-кун", "Аквариум с рыбками", "Клетка для попугая", "Корм для собак 15 кг"},
	6: {"Пальто зимнее женское", "Кроссовки Nike 42", "Платье вечернее", "Сумка кожаная", "Куртка мужская новая"},
	7: {"Коляска 3 в 1", "Детская кроватка с матрасом", "Конструктор LEGO City", "Самокат детский", "Комбинезон на 2 года"},
}

var sellerNames = []string{
	"Иван Петров", "Мария Козлова", "Алексей Волков", "Екатерина Новикова",
	"Дмитрий Соколов", "Ольга Морозова", "Сергей Лебедев", "Наталья Павлова",
}

// Store is the seeded in-memory dataset behind the mock server. All
// mutation goes through moderation actions so the derived statistics stay
// consistent with the data.
//
// Store 是 mock 服务背后的内存种子数据集。所有修改都经由审核操作进行，
// 使推导出的统计与数据保持一致。
type Store struct {
	mu     sync.RWMutex
	ads    map[int64]*moderation.Advertisement
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewStore seeds a deterministic dataset. The same seed always produces
// the same advertisements.
//
// NewStore 生成确定性的种子数据集。相同的种子总是产生相同的广告。
func NewStore(seed int64) *Store {
	s := &Store{
		ads: make(map[int64]*moderation.Advertisement),
		now: time.Now,
	}
	s.seed(seed, defaultSeedSize)
	return s
}

func (s *Store) seed(seed int64, count int) {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	statuses := []moderation.Status{
		moderation.StatusPending, moderation.StatusPending,
		moderation.StatusApproved, moderation.StatusRejected,
	}
	reasons := moderation.RejectionReasons()

	for i := 0; i < count; i++ {
		id := int64(i + 1)
		categoryID := i % len(adTitles)
		category, _ := moderation.CategoryByID(categoryID)
		titles := adTitles[categoryID]
		title := titles[rng.Intn(len(titles))]
		status := statuses[rng.Intn(len(statuses))]
		createdAt := base.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)

		priority := moderation.PriorityNormal
		if rng.Intn(10) == 0 {
			priority = moderation.PriorityUrgent
		}

		images := make([]string, 1+rng.Intn(4))
		for j := range images {
			images[j] = fmt.Sprintf("https://images.example/ads/%d/%d.jpg", id, j+1)
		}

		seller := sellerNames[rng.Intn(len(sellerNames))]
		ad := &moderation.Advertisement{
			ID:          id,
			Title:       title,
			Description: fmt.Sprintf("%s. Состояние отличное, торг уместен.", title),
			Price:       decimal.NewFromInt(int64(500 + rng.Intn(200000))),
			Category:    category.Name,
			CategoryID:  categoryID,
			Status:      status,
			Priority:    priority,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
			Images:      images,
			Seller: moderation.Seller{
				ID:           int64(100 + rng.Intn(len(sellerNames))),
				Name:         seller,
				Rating:       3 + rng.Float64()*2,
				TotalAds:     1 + rng.Intn(40),
				RegisteredAt: base.AddDate(-1-rng.Intn(3), 0, 0),
			},
			Characteristics: []string{"Состояние: хорошее", "Доставка: возможна"},
		}

		// Decided ads carry a history entry explaining the decision.
		if status != moderation.StatusPending {
			entry := moderation.HistoryEntry{
				ID:            id * 10,
				ModeratorID:   currentModerator.ID,
				ModeratorName: currentModerator.Name,
				Action:        status,
				Comment:       "Проверено автоматически при наполнении",
				Timestamp:     createdAt.Add(time.Duration(1+rng.Intn(48)) * time.Hour),
			}
			if status == moderation.StatusRejected {
				entry.Reason = reasons[rng.Intn(len(reasons))]
			}
			ad.ModerationHistory = []moderation.HistoryEntry{entry}
			ad.UpdatedAt = entry.Timestamp
		}

		s.ads[id] = ad
		s.order = append(s.order, id)
		s.nextID = id + 1
	}
}

// Get returns a copy of one advertisement.
func (s *Store) Get(id int64) (moderation.Advertisement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ad, ok := s.ads[id]
	if !ok {
		return moderation.Advertisement{}, false
	}
	return *ad, true
}

// List applies the filter, sort and pagination semantics of the listing
// endpoint and returns one page.
//
// List 应用列表端点的过滤、排序与分页语义并返回一页。
func (s *Store) List(page, limit int, params liststate.Params) moderation.PageResult {
	s.mu.RLock()
	matched := make([]moderation.Advertisement, 0, len(s.order))
	for _, id := range s.order {
		ad := s.ads[id]
		if s.matches(ad, params) {
			matched = append(matched, *ad)
		}
	}
	s.mu.RUnlock()

	sortAds(matched, params.EffectiveSortBy(), params.EffectiveSortOrder())

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	// A requested page outside the range degrades to the nearest valid one,
	// keeping currentPage within [1, max(totalPages, 1)].
	// 请求页码越界时退化到最近的有效页，保证 currentPage 落在
	// [1, max(totalPages, 1)] 区间内。
	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return moderation.PageResult{
		Ads: matched[start:end],
		Pagination: moderation.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
		},
	}
}

func (s *Store) matches(ad *moderation.Advertisement, params liststate.Params) bool {
	if len(params.Statuses) > 0 && !params.HasStatus(ad.Status) {
		return false
	}
	if params.CategoryID != nil && ad.CategoryID != *params.CategoryID {
		return false
	}
	if params.MinPrice != nil && ad.Price.LessThan(*params.MinPrice) {
		return false
	}
	if params.MaxPrice != nil && ad.Price.GreaterThan(*params.MaxPrice) {
		return false
	}
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(ad.Title), needle) &&
			!strings.Contains(strings.ToLower(ad.Description), needle) {
			return false
		}
	}
	return true
}

func sortAds(ads []moderation.Advertisement, field liststate.SortField, order liststate.SortOrder) {
	less := func(a, b moderation.Advertisement) bool {
		switch field {
		case liststate.SortByPrice:
			return a.Price.LessThan(b.Price)
		case liststate.SortByPriority:
			return a.Priority < b.Priority
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(ads, func(i, j int) bool {
		if order == liststate.OrderDesc {
			return less(ads[j], ads[i])
		}
		return less(ads[i], ads[j])
	})
}

// Apply performs a moderation action: it appends a history entry, updates
// the status and bumps the update timestamp.
//
// Apply 执行一次审核操作：追加历史记录、更新状态并刷新更新时间。
func (s *Store) Apply(id int64, action moderation.Action, decision moderation.Decision) (moderation.ActionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, ok := s.ads[id]
	if !ok {
		return moderation.ActionResult{}, false
	}

	status := action.ResultingStatus()
	if status == "" {
		return moderation.ActionResult{}, false
	}

	now := s.now()
	ad.Status = status
	ad.UpdatedAt = now
	ad.ModerationHistory = append(ad.ModerationHistory, moderation.HistoryEntry{
		ID:            s.nextID * 10,
		ModeratorID:   currentModerator.ID,
		ModeratorName: currentModerator.Name,
		Action:        status,
		Reason:        decision.Reason,
		Comment:       decision.Comment,
		Timestamp:     now,
	})
	s.nextID++

	return moderation.ActionResult{
		ID:     id,
		Action: action,
		Status: status,
	}, true
}

// Summary derives the aggregate statistics from the current data.
func (s *Store) Summary() moderation.SummaryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var stats moderation.SummaryStats
	var approved, rejected, requested int

	for _, ad := range s.ads {
		for _, entry := range ad.ModerationHistory {
			stats.TotalReviewed++
			switch entry.Action {
			case moderation.StatusApproved:
				approved++
			case moderation.StatusRejected:
				rejected++
			case moderation.StatusPending:
				requested++
			}
			age := now.Sub(entry.Timestamp)
			if age < 24*time.Hour {
				stats.TotalReviewedToday++
			}
			if age < 7*24*time.Hour {
				stats.TotalReviewedThisWeek++
			}
			if age < 30*24*time.Hour {
				stats.TotalReviewedThisMonth++
			}
		}
	}

	if stats.TotalReviewed > 0 {
		stats.ApprovedPercentage = float64(approved) / float64(stats.TotalReviewed) * 100
		stats.RejectedPercentage = float64(rejected) / float64(stats.TotalReviewed) * 100
		stats.RequestChangesPercentage = float64(requested) / float64(stats.TotalReviewed) * 100
	}
	stats.AverageReviewTime = 45
	return stats
}

// Activity derives the seven-day decision time series, oldest day first.
func (s *Store) Activity() []moderation.ActivityPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	points := make([]moderation.ActivityPoint, 7)
	index := make(map[string]*moderation.ActivityPoint, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6).Format("2006-01-02")
		points[i].Date = day
		index[day] = &points[i]
	}

	for _, ad := range s.ads {
		for _, entry := range ad.ModerationHistory {
			point, ok := index[entry.Timestamp.Format("2006-01-02")]
			if !ok {
				continue
			}
			switch entry.Action {
			case moderation.StatusApproved:
				point.Approved++
			case moderation.StatusRejected:
				point.Rejected++
			case moderation.StatusPending:
				point.RequestChanges++
			}
		}
	}
	return points
}

// Decisions derives the decision-type breakdown over all history.
func (s *Store) Decisions() moderation.DecisionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats moderation.DecisionStats
	for _, ad := range s.ads {
		for _, entry := range ad.ModerationHistory {
			switch entry.Action {
			case moderation.StatusApproved:
				stats.Approved++
			case moderation.StatusRejected:
				stats.Rejected++
			case moderation.StatusPending:
				stats.RequestChanges++
			}
		}
	}
	return stats
}

// Categories derives the per-category listing counts. Every known
// category is present, including zero counts.
func (s *Store) Categories() moderation.CategoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(moderation.CategoryStats, len(moderation.Categories()))
	for _, category := range moderation.Categories() {
		stats[category.Name] = 0
	}
	for _, ad := range s.ads {
		stats[ad.Category]++
	}
	return stats
}

// Moderator returns the fixed moderator profile with its personal
// statistics derived from the data.
func (s *Store) Moderator() moderation.Moderator {
	summary := s.Summary()
	m := currentModerator
	m.Statistics = moderation.ModeratorStatistics{
		TotalReviewed:     summary.TotalReviewed,
		TodayReviewed:     summary.TotalReviewedToday,
		ThisWeekReviewed:  summary.TotalReviewedThisWeek,
		ThisMonthReviewed: summary.TotalReviewedThisMonth,
		AverageReviewTime: summary.AverageReviewTime,
		ApprovalRate:      summary.ApprovedPercentage,
	}
	return m
}
