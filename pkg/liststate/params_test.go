package liststate

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yourusername/admod/pkg/moderation"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

// TestParamsRoundTrip verifies that building a URL query from Params and
// parsing it back yields the same Params, for a range of filter
// combinations.
//
// TestParamsRoundTrip 验证从 Params 构建 URL 查询再解析回来得到相同的
// Params，覆盖多种过滤组合。
func TestParamsRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		params Params
	}{
		{name: "empty", params: Params{}},
		{
			name: "multi status with search",
			params: Params{
				Statuses: []moderation.Status{moderation.StatusPending, moderation.StatusRejected},
				Search:   "iphone",
			},
		},
		{
			name: "category zero is a real filter",
			params: Params{
				CategoryID: intPtr(0),
			},
		},
		{
			name: "price range and sort",
			params: Params{
				MinPrice:  decimalPtr("100.50"),
				MaxPrice:  decimalPtr("20000"),
				SortBy:    SortByPrice,
				SortOrder: OrderAsc,
			},
		},
		{
			name: "everything",
			params: Params{
				Statuses:   []moderation.Status{moderation.StatusApproved},
				CategoryID: intPtr(3),
				MinPrice:   decimalPtr("1"),
				MaxPrice:   decimalPtr("9999.99"),
				Search:     "диван",
				SortBy:     SortByPriority,
				SortOrder:  OrderDesc,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := ParseParams(tc.params.Query())
			if !parsed.Equal(tc.params) {
				t.Errorf("round trip mismatch:\n  in:  %s\n  out: %s",
					tc.params.CanonicalKey(), parsed.CanonicalKey())
			}
		})
	}
}

// TestStateRoundTrip verifies that the page survives the URL round trip
// together with the parameters.
//
// TestStateRoundTrip 验证页码与参数一起通过 URL 往返。
func TestStateRoundTrip(t *testing.T) {
	state := State{
		Page: 7,
		Params: Params{
			Statuses: []moderation.Status{moderation.StatusPending},
			Search:   "велосипед",
		},
	}

	restored := FromQuery(state.Query())
	if restored.Page != 7 {
		t.Errorf("expected page 7, got %d", restored.Page)
	}
	if !restored.Params.Equal(state.Params) {
		t.Error("parameters did not survive the round trip")
	}
}

// TestParseParamsDropsMalformed verifies that malformed or unknown values
// degrade to a broader listing instead of failing.
//
// TestParseParamsDropsMalformed 验证格式错误或未知的值会退化为更宽的列表
// 而不是失败。
func TestParseParamsDropsMalformed(t *testing.T) {
	values := url.Values{}
	values.Set("categoryId", "not-a-number")
	values.Set("minPrice", "abc")
	values.Add("status", "bogus")
	values.Add("status", "approved")
	values.Add("status", "approved") // duplicate / 重复值
	values.Set("sortBy", "popularity")
	values.Set("sortOrder", "sideways")

	p := ParseParams(values)
	if p.CategoryID != nil {
		t.Error("malformed categoryId should be dropped")
	}
	if p.MinPrice != nil {
		t.Error("malformed minPrice should be dropped")
	}
	if len(p.Statuses) != 1 || p.Statuses[0] != moderation.StatusApproved {
		t.Errorf("expected deduplicated [approved], got %v", p.Statuses)
	}
	if p.SortBy != "" || p.SortOrder != "" {
		t.Error("unknown sort values should be dropped")
	}
}

// TestParseQueryPageDefault verifies that a missing or invalid page parses
// as page 1.
//
// TestParseQueryPageDefault 验证页码缺失或非法时解析为第 1 页。
func TestParseQueryPageDefault(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "x"} {
		values := url.Values{}
		if raw != "" {
			values.Set("page", raw)
		}
		page, _ := ParseQuery(values)
		if page != 1 {
			t.Errorf("page %q: expected default 1, got %d", raw, page)
		}
	}

	values := url.Values{}
	values.Set("page", "12")
	page, _ := ParseQuery(values)
	if page != 12 {
		t.Errorf("expected page 12, got %d", page)
	}
}

// TestCanonicalKeyOrderInsensitive verifies that the cache key ignores the
// order statuses were toggled in, while Encode preserves it.
//
// TestCanonicalKeyOrderInsensitive 验证缓存键忽略状态勾选顺序，
// 而 Encode 保留该顺序。
func TestCanonicalKeyOrderInsensitive(t *testing.T) {
	a := Params{Statuses: []moderation.Status{moderation.StatusPending, moderation.StatusApproved}}
	b := Params{Statuses: []moderation.Status{moderation.StatusApproved, moderation.StatusPending}}

	if a.CanonicalKey() != b.CanonicalKey() {
		t.Error("canonical keys should match regardless of toggle order")
	}
	if a.Query().Encode() == b.Query().Encode() {
		t.Error("encoded URL should preserve selection order")
	}
}
