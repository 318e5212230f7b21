package liststate

// maxVisiblePages is the width of the pagination window.
//
// maxVisiblePages 是分页窗口的宽度。
const maxVisiblePages = 5

// PageWindow returns the page numbers to display: at most five, centered on
// currentPage, clamped so the window never extends past [1, totalPages].
// The result always holds exactly min(5, totalPages) numbers.
//
// PageWindow 返回要展示的页码：最多五个，以 currentPage 为中心，
// 并收敛到 [1, totalPages] 之内。结果总是恰好包含 min(5, totalPages) 个页码。
func PageWindow(currentPage, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	start := currentPage - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > totalPages {
		end = totalPages
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// HasPrevPage reports whether a previous page exists.
//
// HasPrevPage 报告是否存在上一页。
func HasPrevPage(currentPage int) bool {
	return currentPage > 1
}

// HasNextPage reports whether a next page exists.
//
// HasNextPage 报告是否存在下一页。
func HasNextPage(currentPage, totalPages int) bool {
	return currentPage < totalPages
}
