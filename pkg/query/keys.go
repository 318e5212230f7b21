package query

import (
	"fmt"

	"github.com/yourusername/admod/pkg/liststate"
)

// Cache key namespaces. Every advertisement-derived entry lives under the
// "ads" prefix so a single prefix delete invalidates lists and details
// together after a moderation action.
//
// 缓存键命名空间。所有广告相关条目都位于 "ads" 前缀下，
// 这样一次前缀删除即可在审核操作后同时让列表与详情失效。
const (
	KeyPrefixAds = "ads"
	KeyStats     = "stats"
)

// ListKey builds the cache key for one page of a filtered listing. The
// filter part comes from the canonical form of the parameters, so two
// selections that differ only in status click order share an entry.
//
// ListKey 构建某个过滤列表单页的缓存键。过滤部分来自参数的规范形式，
// 因此仅状态点击顺序不同的两个选择共享同一条目。
func ListKey(page int, params liststate.Params) string {
	return fmt.Sprintf("%s:list:%d:%s", KeyPrefixAds, page, params.CanonicalKey())
}

// DetailKey builds the cache key for a single advertisement.
//
// DetailKey 构建单个广告的缓存键。
func DetailKey(id int64) string {
	return fmt.Sprintf("%s:detail:%d", KeyPrefixAds, id)
}
