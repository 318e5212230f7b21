package liststate

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the inactivity window before a search draft is
// committed.
//
// DefaultSearchDelay 是搜索草稿提交前的静默窗口。
const DefaultSearchDelay = 500 * time.Millisecond

// SearchDebouncer owns the transient search textbox value. The draft echoes
// every keystroke immediately; a commit fires only after the configured
// inactivity window, and only when the draft differs from the committed
// value. When the committed value changes out of band (back/forward
// navigation, filter reset), Resync adopts it into the draft and cancels any
// pending commit.
//
// SearchDebouncer 持有搜索输入框的瞬态值。草稿即时回显每次击键；
// 只有在静默窗口结束且草稿与已提交值不同时才触发提交。
// 当已提交值被外部更改（前进/后退导航、重置过滤）时，
// Resync 会把它采纳为草稿并取消待定的提交。
type SearchDebouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	draft     string
	committed string
	timer     *time.Timer
	commit    func(string)
	stopped   bool
}

// NewSearchDebouncer creates a debouncer around the given committed value.
// The commit callback receives the new committed value; it runs on the timer
// goroutine, so callers route it back into their own flow (typically a
// CommitSearch transition plus a refetch).
//
// NewSearchDebouncer 围绕给定的已提交值创建防抖器。commit 回调接收新的
// 已提交值；它在定时器 goroutine 上运行，调用方应将其转回自己的流程
// （通常是 CommitSearch 变换加一次重新获取）。
//
// Parameters:
//   - committed: The currently committed search value
//   - delay: The inactivity window, 0 uses DefaultSearchDelay
//   - commit: Called with the draft when the window elapses
//
// Returns:
//   - *SearchDebouncer: A new debouncer
func NewSearchDebouncer(committed string, delay time.Duration, commit func(string)) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &SearchDebouncer{
		delay:     delay,
		draft:     committed,
		committed: committed,
		commit:    commit,
	}
}

// SetDraft records a keystroke: the draft updates immediately and the commit
// timer restarts.
//
// SetDraft 记录一次击键：草稿立即更新，提交定时器重新开始计时。
func (d *SearchDebouncer) SetDraft(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.draft = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Draft returns the current transient value.
//
// Draft 返回当前瞬态值。
func (d *SearchDebouncer) Draft() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// Committed returns the last committed value.
//
// Committed 返回最近一次提交的值。
func (d *SearchDebouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// Resync adopts an out-of-band change to the committed value: the draft is
// overwritten and any pending commit is cancelled.
//
// Resync 采纳已提交值的外部变化：覆盖草稿并取消待定的提交。
func (d *SearchDebouncer) Resync(committed string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.committed = committed
	d.draft = committed
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush commits a pending draft immediately instead of waiting out the
// inactivity window. Useful when the view is about to navigate away, and in
// tests.
//
// Flush 立即提交待定草稿而不等待静默窗口结束。
// 适用于视图即将跳转时，也便于测试。
func (d *SearchDebouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending commit and disables the debouncer.
//
// Stop 取消待定提交并停用防抖器。
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire commits the draft when it differs from the committed value. Only the
// final timer firing reaches this point; earlier timers were stopped by
// later keystrokes.
//
// fire 在草稿与已提交值不同时提交草稿。只有最后一个定时器会走到这里；
// 之前的定时器已被后续击键停止。
func (d *SearchDebouncer) fire() {
	d.mu.Lock()
	if d.stopped || d.draft == d.committed {
		d.mu.Unlock()
		return
	}
	value := d.draft
	d.committed = value
	commit := d.commit
	d.mu.Unlock()

	if commit != nil {
		commit(value)
	}
}
