// Package liststate implements the list view's query-state machine. The URL
// query string is the single source of truth for what is fetched: Params is
// fully reconstructible from it, every filter transition is expressed as a
// rewrite of it, and no parallel state may diverge from it except the
// transient, not-yet-committed search draft owned by SearchDebouncer.
//
// Package liststate 实现列表视图的查询状态机。URL 查询串是获取内容的
// 唯一事实来源：Params 可以完全由它重建，每次过滤变更都表达为对它的改写，
// 除 SearchDebouncer 持有的未提交搜索草稿外，不允许任何并行状态偏离它。
package liststate

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/admod/pkg/moderation"
)

// SortField is the field listings are ordered by.
//
// SortField 是广告排序所依据的字段。
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByPrice     SortField = "price"
	SortByPriority  SortField = "priority"
)

// SortOrder is the sort direction.
//
// SortOrder 是排序方向。
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Default sort shown when the URL carries no sort parameters. Newest
// listings first matches the moderation queue's reading order.
//
// URL 不携带排序参数时的默认排序。最新广告在前，与审核队列的阅读顺序一致。
const (
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = OrderDesc
)

// Params is the complete, client-owned filter/sort specification for list
// fetches. This is the canonical multi-status contract: every selected
// status is carried, in selection order.
//
// Params 是列表获取的完整过滤/排序规格，由客户端持有。
// 这是规范的多状态契约：所有被选状态都会携带，按选择顺序排列。
type Params struct {
	// Statuses is the selected status set. Empty means no status filter.
	// Statuses 是被选状态集合。为空表示不过滤状态。
	Statuses []moderation.Status

	// CategoryID filters by category when non-nil. Category id 0 is a real
	// category, so presence is carried by the pointer, never by the value.
	//
	// CategoryID 非 nil 时按类目过滤。类目 id 0 是真实类目，
	// 因此是否过滤由指针表达，绝不由值表达。
	CategoryID *int

	// MinPrice and MaxPrice bound the price range when non-nil.
	// MinPrice 和 MaxPrice 非 nil 时限定价格区间。
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	// Search is the committed free-text search string.
	// Search 是已提交的全文搜索串。
	Search string

	// SortBy and SortOrder select the ordering. Zero values mean the
	// defaults and are omitted from the encoded URL.
	//
	// SortBy 和 SortOrder 选择排序。零值表示默认值，且不出现在编码后的 URL 中。
	SortBy    SortField
	SortOrder SortOrder
}

// EffectiveSortBy returns SortBy, or the default when unset.
//
// EffectiveSortBy 返回 SortBy，未设置时返回默认值。
func (p Params) EffectiveSortBy() SortField {
	if p.SortBy == "" {
		return DefaultSortBy
	}
	return p.SortBy
}

// EffectiveSortOrder returns SortOrder, or the default when unset.
//
// EffectiveSortOrder 返回 SortOrder，未设置时返回默认值。
func (p Params) EffectiveSortOrder() SortOrder {
	if p.SortOrder == "" {
		return DefaultSortOrder
	}
	return p.SortOrder
}

// HasStatus reports whether s is in the selected status set.
//
// HasStatus 报告 s 是否在被选状态集合中。
func (p Params) HasStatus(s moderation.Status) bool {
	for _, have := range p.Statuses {
		if have == s {
			return true
		}
	}
	return false
}

// Equal reports whether two parameter sets request the same data.
//
// Equal 报告两组参数是否请求同样的数据。
func (p Params) Equal(other Params) bool {
	return p.CanonicalKey() == other.CanonicalKey()
}

// Encode writes the parameters into values, preserving selection order for
// the repeated status parameter. Default and absent fields are omitted, so a
// freshly reset state encodes to an empty query.
//
// Encode 将参数写入 values，重复的 status 参数保持选择顺序。
// 默认值与缺省字段会被省略，因此刚重置的状态编码为空查询。
func (p Params) Encode(values url.Values) {
	for _, s := range p.Statuses {
		values.Add("status", string(s))
	}
	if p.CategoryID != nil {
		values.Set("categoryId", strconv.Itoa(*p.CategoryID))
	}
	if p.MinPrice != nil {
		values.Set("minPrice", p.MinPrice.String())
	}
	if p.MaxPrice != nil {
		values.Set("maxPrice", p.MaxPrice.String())
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.SortBy != "" {
		values.Set("sortBy", string(p.SortBy))
	}
	if p.SortOrder != "" {
		values.Set("sortOrder", string(p.SortOrder))
	}
}

// Query returns the parameters as a fresh url.Values.
//
// Query 将参数作为新的 url.Values 返回。
func (p Params) Query() url.Values {
	values := url.Values{}
	p.Encode(values)
	return values
}

// CanonicalKey renders the parameters as a stable string for cache keying.
// Unlike Encode it sorts the status set, so two selections that differ only
// in toggle order share one cache entry.
//
// CanonicalKey 将参数渲染为用于缓存键的稳定字符串。
// 与 Encode 不同，它会对状态集合排序，使仅勾选顺序不同的两次选择
// 共享同一缓存条目。
func (p Params) CanonicalKey() string {
	values := url.Values{}
	statuses := make([]string, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		values.Add("status", s)
	}
	if p.CategoryID != nil {
		values.Set("categoryId", strconv.Itoa(*p.CategoryID))
	}
	if p.MinPrice != nil {
		values.Set("minPrice", p.MinPrice.String())
	}
	if p.MaxPrice != nil {
		values.Set("maxPrice", p.MaxPrice.String())
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	values.Set("sortBy", string(p.EffectiveSortBy()))
	values.Set("sortOrder", string(p.EffectiveSortOrder()))
	return values.Encode()
}

// ParseParams reconstructs Params from a URL query. Unknown or malformed
// values are dropped rather than carried as errors: a shared or hand-edited
// URL should degrade to a broader listing, not a broken view.
//
// ParseParams 从 URL 查询重建 Params。未知或格式错误的值被丢弃而不是
// 作为错误传播：分享或手改的 URL 应退化为更宽的列表，而不是坏掉的视图。
func ParseParams(values url.Values) Params {
	p := Params{}

	for _, raw := range values["status"] {
		s := moderation.Status(raw)
		if s.Valid() && !p.HasStatus(s) {
			p.Statuses = append(p.Statuses, s)
		}
	}
	if raw := strings.TrimSpace(values.Get("categoryId")); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			if _, ok := moderation.CategoryByID(id); ok {
				p.CategoryID = &id
			}
		}
	}
	if raw := strings.TrimSpace(values.Get("minPrice")); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			p.MinPrice = &d
		}
	}
	if raw := strings.TrimSpace(values.Get("maxPrice")); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			p.MaxPrice = &d
		}
	}
	p.Search = values.Get("search")

	switch SortField(values.Get("sortBy")) {
	case SortByCreatedAt:
		p.SortBy = SortByCreatedAt
	case SortByPrice:
		p.SortBy = SortByPrice
	case SortByPriority:
		p.SortBy = SortByPriority
	}
	switch SortOrder(values.Get("sortOrder")) {
	case OrderAsc:
		p.SortOrder = OrderAsc
	case OrderDesc:
		p.SortOrder = OrderDesc
	}

	return p
}

// ParseQuery reconstructs the full list state (page plus parameters) from a
// URL query. A missing or malformed page defaults to 1.
//
// ParseQuery 从 URL 查询重建完整列表状态（页码加参数）。
// 页码缺失或格式错误时默认为 1。
func ParseQuery(values url.Values) (int, Params) {
	page := 1
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	return page, ParseParams(values)
}
