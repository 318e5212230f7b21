package moderation

import "time"

// SummaryStats is the aggregate review summary. All fields are derived
// server-side; the client never caches them beyond a single fetch cycle.
//
// SummaryStats 是审核汇总统计。所有字段均由服务端推导；
// 客户端不会在单次获取周期之外缓存它们。
type SummaryStats struct {
	TotalReviewed            int     `json:"totalReviewed"`
	TotalReviewedToday       int     `json:"totalReviewedToday"`
	TotalReviewedThisWeek    int     `json:"totalReviewedThisWeek"`
	TotalReviewedThisMonth   int     `json:"totalReviewedThisMonth"`
	ApprovedPercentage       float64 `json:"approvedPercentage"`
	RejectedPercentage       float64 `json:"rejectedPercentage"`
	RequestChangesPercentage float64 `json:"requestChangesPercentage"`
	AverageReviewTime        float64 `json:"averageReviewTime"`
}

// ActivityPoint is one day of decision counts in the activity time series.
// The server returns a fixed-length series (seven days).
//
// ActivityPoint 是活动时间序列中一天的决策计数。
// 服务端返回固定长度的序列（七天）。
type ActivityPoint struct {
	Date           string `json:"date"`
	Approved       int    `json:"approved"`
	Rejected       int    `json:"rejected"`
	RequestChanges int    `json:"requestChanges"`
}

// DecisionStats is the decision-type breakdown.
//
// DecisionStats 是按决策类型的分布。
type DecisionStats struct {
	Approved       int `json:"approved"`
	Rejected       int `json:"rejected"`
	RequestChanges int `json:"requestChanges"`
}

// CategoryStats maps each of the known category names to a listing count.
// Every known category is present, including zero counts.
//
// CategoryStats 将每个已知类目名称映射到广告数量。
// 所有已知类目都会出现，包括计数为零的。
type CategoryStats map[string]int

// ModeratorStatistics is the personal statistics block of a moderator
// profile.
//
// ModeratorStatistics 是审核员档案中的个人统计块。
type ModeratorStatistics struct {
	TotalReviewed     int     `json:"totalReviewed"`
	TodayReviewed     int     `json:"todayReviewed"`
	ThisWeekReviewed  int     `json:"thisWeekReviewed"`
	ThisMonthReviewed int     `json:"thisMonthReviewed"`
	AverageReviewTime float64 `json:"averageReviewTime"`
	ApprovalRate      float64 `json:"approvalRate"`
}

// Permission names an action a moderator is allowed to perform.
//
// Permission 命名审核员被允许执行的操作。
type Permission string

const (
	PermApproveAds     Permission = "approve_ads"
	PermRejectAds      Permission = "reject_ads"
	PermRequestChanges Permission = "request_changes"
	PermViewStats      Permission = "view_stats"
)

// Moderator is the current moderator profile as returned by the API.
//
// Moderator 是 API 返回的当前审核员档案。
type Moderator struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         string              `json:"role"`
	Statistics   ModeratorStatistics `json:"statistics"`
	Permissions  []Permission        `json:"permissions"`
	RegisteredAt time.Time           `json:"registeredAt,omitempty"`
}

// Can reports whether the moderator holds the given permission. Callers
// decide whether to gate actions on it; nothing in this module enforces it.
//
// Can 报告审核员是否拥有给定权限。是否据此隐藏操作由调用方决定；
// 本模块不做强制。
func (m *Moderator) Can(p Permission) bool {
	for _, have := range m.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// StatsSnapshot is the composite of the four aggregate reads. Decisions is
// nil when the decisions endpoint failed; the other three are always set on
// a successful composite fetch.
//
// StatsSnapshot 是四个聚合读取的组合。decisions 端点失败时 Decisions 为 nil；
// 组合获取成功时其余三个字段总是有值。
type StatsSnapshot struct {
	Summary    *SummaryStats   `json:"summary"`
	Activity   []ActivityPoint `json:"activity"`
	Decisions  *DecisionStats  `json:"decisions,omitempty"`
	Categories CategoryStats   `json:"categories"`
}
