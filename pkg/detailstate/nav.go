package detailstate

// NavSequence is the ordered id list the list view carries into the detail
// view, enabling prev/next traversal without refetching the list. A detail
// view opened directly (no carried sequence) has both directions disabled.
//
// NavSequence 是列表视图带入详情视图的有序 id 列表，
// 支持不重新获取列表的上一条/下一条遍历。直接打开的详情视图
// （未携带序列）两个方向都不可用。
type NavSequence struct {
	ids     []int64
	current int64
}

// NewNavSequence creates a sequence positioned at current. A nil or empty
// ids list models direct navigation.
//
// NewNavSequence 创建定位在 current 的序列。ids 为 nil 或空
// 表示直接打开详情。
func NewNavSequence(ids []int64, current int64) *NavSequence {
	copied := make([]int64, len(ids))
	copy(copied, ids)
	return &NavSequence{ids: copied, current: current}
}

// IDs returns a copy of the carried sequence.
//
// IDs 返回携带序列的副本。
func (n *NavSequence) IDs() []int64 {
	out := make([]int64, len(n.ids))
	copy(out, n.ids)
	return out
}

// Current returns the id the view is positioned at.
//
// Current 返回视图当前定位的 id。
func (n *NavSequence) Current() int64 {
	return n.current
}

func (n *NavSequence) position() int {
	for i, id := range n.ids {
		if id == n.current {
			return i
		}
	}
	return -1
}

// PrevID returns the id before the current one. ok is false at the start of
// the sequence, when the current id is not in the sequence, or when no
// sequence was carried.
//
// PrevID 返回当前 id 之前的 id。位于序列开头、当前 id 不在序列中
// 或未携带序列时 ok 为 false。
func (n *NavSequence) PrevID() (int64, bool) {
	pos := n.position()
	if pos <= 0 {
		return 0, false
	}
	return n.ids[pos-1], true
}

// NextID returns the id after the current one, with the symmetric boundary
// rules.
//
// NextID 返回当前 id 之后的 id，边界规则与 PrevID 对称。
func (n *NavSequence) NextID() (int64, bool) {
	pos := n.position()
	if pos < 0 || pos >= len(n.ids)-1 {
		return 0, false
	}
	return n.ids[pos+1], true
}

// Jump repositions the sequence at id, keeping the carried ids. This is the
// navigation step itself: the next detail view reuses the same sequence.
//
// Jump 将序列重新定位到 id，携带的 ids 不变。这就是导航动作本身：
// 下一个详情视图复用同一序列。
func (n *NavSequence) Jump(id int64) {
	n.current = id
}
