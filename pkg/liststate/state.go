package liststate

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/yourusername/admod/pkg/moderation"
)

// State is the full URL-encoded list view state: the current page plus the
// filter/sort parameters. Every transition below mirrors one user gesture in
// the list view. Transitions that narrow or change the result set reset the
// page to 1; sort changes keep it.
//
// State 是完整的 URL 编码列表视图状态：当前页码加过滤/排序参数。
// 下面的每个变换对应列表视图中的一个用户操作。收窄或改变结果集的变换
// 会把页码重置为 1；排序变更则保留页码。
type State struct {
	Page   int
	Params Params
}

// NewState returns the initial state: page 1, no filters.
//
// NewState 返回初始状态：第 1 页，无过滤。
func NewState() State {
	return State{Page: 1}
}

// FromQuery reconstructs a State from a URL query string's values.
//
// FromQuery 从 URL 查询串的值重建 State。
func FromQuery(values url.Values) State {
	page, params := ParseQuery(values)
	return State{Page: page, Params: params}
}

// Query encodes the state back into URL values. FromQuery(s.Query()) yields
// a state equal to s.
//
// Query 将状态编码回 URL values。FromQuery(s.Query()) 得到与 s 相等的状态。
func (s State) Query() url.Values {
	values := s.Params.Query()
	values.Set("page", strconv.Itoa(s.Page))
	return values
}

// ToggleStatus adds the status to the selected set when absent, removes
// exactly it when present, and resets the page to 1. All other statuses are
// left unchanged.
//
// ToggleStatus 在状态缺席时将其加入选择集合，存在时仅移除它本身，
// 并把页码重置为 1。其他状态保持不变。
func (s *State) ToggleStatus(status moderation.Status) {
	if !status.Valid() {
		return
	}
	if s.Params.HasStatus(status) {
		// Earlier Params copies may still alias the backing array, so the
		// compacted set must live in a fresh slice.
		kept := make([]moderation.Status, 0, len(s.Params.Statuses)-1)
		for _, have := range s.Params.Statuses {
			if have != status {
				kept = append(kept, have)
			}
		}
		s.Params.Statuses = kept
	} else {
		s.Params.Statuses = append(s.Params.Statuses, status)
	}
	s.Page = 1
}

// SetCategory sets or clears (nil) the category filter and resets the page.
//
// SetCategory 设置或清除（nil）类目过滤并重置页码。
func (s *State) SetCategory(id *int) {
	if id != nil {
		if _, ok := moderation.CategoryByID(*id); !ok {
			return
		}
		v := *id
		s.Params.CategoryID = &v
	} else {
		s.Params.CategoryID = nil
	}
	s.Page = 1
}

// SetMinPrice sets or clears the lower price bound and resets the page.
//
// SetMinPrice 设置或清除价格下限并重置页码。
func (s *State) SetMinPrice(d *decimal.Decimal) {
	if d != nil {
		v := *d
		s.Params.MinPrice = &v
	} else {
		s.Params.MinPrice = nil
	}
	s.Page = 1
}

// SetMaxPrice sets or clears the upper price bound and resets the page.
//
// SetMaxPrice 设置或清除价格上限并重置页码。
func (s *State) SetMaxPrice(d *decimal.Decimal) {
	if d != nil {
		v := *d
		s.Params.MaxPrice = &v
	} else {
		s.Params.MaxPrice = nil
	}
	s.Page = 1
}

// CommitSearch commits a debounced search value and resets the page. The
// transient draft lives in SearchDebouncer; only committed values reach the
// state.
//
// CommitSearch 提交防抖后的搜索值并重置页码。瞬态草稿保存在
// SearchDebouncer 中；只有已提交的值才会进入状态。
func (s *State) CommitSearch(search string) {
	s.Params.Search = search
	s.Page = 1
}

// SetSortBy changes the sort field. The page is preserved.
//
// SetSortBy 更改排序字段。页码保持不变。
func (s *State) SetSortBy(field SortField) {
	switch field {
	case SortByCreatedAt, SortByPrice, SortByPriority:
		s.Params.SortBy = field
	}
}

// SetSortOrder changes the sort direction. The page is preserved.
//
// SetSortOrder 更改排序方向。页码保持不变。
func (s *State) SetSortOrder(order SortOrder) {
	switch order {
	case OrderAsc, OrderDesc:
		s.Params.SortOrder = order
	}
}

// SetPage moves to the given page, clamped to [1, max(totalPages, 1)].
//
// SetPage 跳转到给定页码，并收敛到 [1, max(totalPages, 1)]。
func (s *State) SetPage(page, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	s.Page = page
}

// Reset clears every filter and sort parameter and returns to page 1.
//
// Reset 清除所有过滤与排序参数并回到第 1 页。
func (s *State) Reset() {
	*s = NewState()
}
