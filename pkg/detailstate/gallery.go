// Package detailstate holds the detail view's purely local state: the image
// gallery index, the decision modal draft, and the prev/next id sequence
// carried over from the list view. None of it is URL state.
//
// Package detailstate 保存详情视图的纯本地状态：图片索引、
// 决策弹窗草稿，以及从列表视图带入的上一条/下一条 id 序列。
// 这些都不是 URL 状态。
package detailstate

// Gallery tracks the currently displayed image. Navigation wraps modulo the
// image count in both directions.
//
// Gallery 跟踪当前展示的图片。两个方向的切换都按图片数量取模回绕。
type Gallery struct {
	count int
	index int
}

// NewGallery creates a gallery over count images, starting at index 0.
//
// NewGallery 创建覆盖 count 张图片的画廊，从索引 0 开始。
func NewGallery(count int) *Gallery {
	if count < 0 {
		count = 0
	}
	return &Gallery{count: count}
}

// Index returns the current image index, always 0 for an empty gallery.
//
// Index 返回当前图片索引，空画廊恒为 0。
func (g *Gallery) Index() int {
	return g.index
}

// Count returns the number of images.
//
// Count 返回图片数量。
func (g *Gallery) Count() int {
	return g.count
}

// Next advances to the following image, wrapping to the first after the
// last.
//
// Next 切换到下一张图片，越过最后一张后回到第一张。
func (g *Gallery) Next() {
	if g.count == 0 {
		return
	}
	g.index = (g.index + 1) % g.count
}

// Prev steps back to the previous image, wrapping to the last before the
// first.
//
// Prev 切换到上一张图片，越过第一张后回到最后一张。
func (g *Gallery) Prev() {
	if g.count == 0 {
		return
	}
	g.index = (g.index - 1 + g.count) % g.count
}

// Select jumps to a thumbnail. Out-of-range indexes are ignored.
//
// Select 跳转到某个缩略图。越界索引被忽略。
func (g *Gallery) Select(index int) {
	if index < 0 || index >= g.count {
		return
	}
	g.index = index
}
