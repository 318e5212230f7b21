// Package moderation defines the domain model for the advertisement
// moderation back office: listings, sellers, moderation history, decision
// payloads and the aggregate statistics read models.
//
// Package moderation 定义广告审核后台的领域模型：
// 广告、卖家、审核历史、决策载荷以及聚合统计读模型。
package moderation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the moderation status of an advertisement.
//
// Status 是广告的审核状态。
type Status string

// The three moderation statuses. An advertisement returned for changes goes
// back to StatusPending.
//
// 三种审核状态。退回修改的广告回到 StatusPending。
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses.
//
// Valid 报告 s 是否为已知状态之一。
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Priority marks how urgently an advertisement needs review.
//
// Priority 标记广告需要审核的紧急程度。
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

// Action identifies a moderation action taken on an advertisement.
//
// Action 标识对广告执行的审核操作。
type Action string

const (
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionRequestChanges Action = "request-changes"
)

// ResultingStatus returns the status an advertisement ends up in after the
// action. Unknown actions map to the empty status.
//
// ResultingStatus 返回广告在该操作之后所处的状态。未知操作映射为空状态。
func (a Action) ResultingStatus() Status {
	switch a {
	case ActionApprove:
		return StatusApproved
	case ActionReject:
		return StatusRejected
	case ActionRequestChanges:
		return StatusPending
	}
	return ""
}

// RejectionReason is one of the fixed reasons a moderator can attach to a
// reject or request-changes decision.
//
// RejectionReason 是审核员在拒绝或退回修改时可附加的固定原因之一。
type RejectionReason string

// The fixed rejection reason vocabulary, as presented to moderators.
//
// 固定的拒绝原因词表，与展示给审核员的一致。
const (
	ReasonProhibitedItem RejectionReason = "Запрещенный товар"
	ReasonWrongCategory  RejectionReason = "Неверная категория"
	ReasonBadDescription RejectionReason = "Некорректное описание"
	ReasonPhotoProblems  RejectionReason = "Проблемы с фото"
	ReasonFraudSuspicion RejectionReason = "Подозрение на мошенничество"
	ReasonOther          RejectionReason = "Другое"
)

// RejectionReasons returns the full reason vocabulary in display order.
//
// RejectionReasons 按展示顺序返回完整的原因词表。
func RejectionReasons() []RejectionReason {
	return []RejectionReason{
		ReasonProhibitedItem,
		ReasonWrongCategory,
		ReasonBadDescription,
		ReasonPhotoProblems,
		ReasonFraudSuspicion,
		ReasonOther,
	}
}

// Seller is the seller summary embedded in an advertisement.
//
// Seller 是内嵌在广告中的卖家摘要。
type Seller struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	TotalAds     int       `json:"totalAds"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// HistoryEntry is a single moderation history record. Entries are appended
// server-side, newest last as fetched, and are never mutated by clients.
//
// HistoryEntry 是一条审核历史记录。记录由服务端追加，
// 获取时最新的在最后，客户端从不修改。
type HistoryEntry struct {
	ID            int64           `json:"id"`
	ModeratorID   int64           `json:"moderatorId"`
	ModeratorName string          `json:"moderatorName"`
	Action        Status          `json:"action"`
	Reason        RejectionReason `json:"reason,omitempty"`
	Comment       string          `json:"comment"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Advertisement is a single moderatable listing. It is an ephemeral
// client-side projection of server state: created on fetch, replaced
// wholesale on refetch, discarded on cache invalidation.
//
// Advertisement 是一条可审核的广告。它是服务端状态的临时客户端投影：
// 获取时创建，重新获取时整体替换，缓存失效时丢弃。
type Advertisement struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Category          string          `json:"category"`
	CategoryID        int             `json:"categoryId"`
	Status            Status          `json:"status"`
	Priority          Priority        `json:"priority"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Images            []string        `json:"images"`
	Seller            Seller          `json:"seller"`
	Characteristics   []string        `json:"characteristics"`
	ModerationHistory []HistoryEntry  `json:"moderationHistory,omitempty"`
}

// Pagination is the paging metadata attached to a page of listings.
//
// Pagination 是广告分页结果附带的分页元数据。
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// Validate checks the pagination invariant 1 <= CurrentPage <= max(TotalPages, 1).
//
// Validate 校验分页不变量 1 <= CurrentPage <= max(TotalPages, 1)。
func (p Pagination) Validate() error {
	upper := p.TotalPages
	if upper < 1 {
		upper = 1
	}
	if p.CurrentPage < 1 || p.CurrentPage > upper {
		return fmt.Errorf("moderation: current page %d outside [1, %d]", p.CurrentPage, upper)
	}
	return nil
}

// PageResult is one page of advertisements plus its pagination metadata.
//
// PageResult 是一页广告及其分页元数据。
type PageResult struct {
	Ads        []Advertisement `json:"ads"`
	Pagination Pagination      `json:"pagination"`
}

// IDs returns the ordered ids of the advertisements on this page. The list
// view carries this sequence into the detail view for prev/next traversal.
//
// IDs 返回本页广告的有序 id 序列。列表视图将该序列带入详情视图，
// 用于上一条/下一条导航。
func (r *PageResult) IDs() []int64 {
	ids := make([]int64, 0, len(r.Ads))
	for _, ad := range r.Ads {
		ids = append(ids, ad.ID)
	}
	return ids
}

// Decision is the payload of a reject or request-changes action.
//
// Decision 是拒绝或退回修改操作的载荷。
type Decision struct {
	Reason  RejectionReason `json:"reason"`
	Comment string          `json:"comment"`
}

// Validate checks that the decision carries a non-empty reason.
//
// Validate 校验决策是否携带非空原因。
func (d Decision) Validate() error {
	if d.Reason == "" {
		return fmt.Errorf("moderation: decision reason is required")
	}
	return nil
}

// ActionResult is the structured outcome of a moderation action. Callers
// branch on the fields, never on message content.
//
// ActionResult 是审核操作的结构化结果。调用方根据字段分支，
// 而不是根据消息内容。
type ActionResult struct {
	ID      int64  `json:"id"`
	Action  Action `json:"action"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}
