package board

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/admod/pkg/client"
	"github.com/yourusername/admod/pkg/detailstate"
	"github.com/yourusername/admod/pkg/moderation"
)

// DetailService is the slice of the query layer the detail controller
// needs: one read plus the three moderation actions. *query.Queries
// satisfies it.
//
// DetailService 是详情控制器需要的查询层切片：一个读取加三种审核操作。
// *query.Queries 满足该接口。
type DetailService interface {
	Detail(ctx context.Context, id int64) (*moderation.Advertisement, error)
	Approve(ctx context.Context, id int64) (*moderation.ActionResult, error)
	Reject(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error)
	RequestChanges(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error)
}

// DetailSnapshot is one published view of the detail screen. NotFound is a
// distinct presentational state, not an error: the screen shows a "no such
// advertisement" placeholder instead of a failure banner.
//
// DetailSnapshot 是详情页的一次发布视图。NotFound 是独立的展示状态
// 而非错误：页面展示"广告不存在"占位而不是失败横幅。
type DetailSnapshot struct {
	Ad       *moderation.Advertisement
	Loading  bool
	NotFound bool
	Err      error

	ImageIndex int
	ImageCount int
	Modal      detailstate.ModalKind
	CanConfirm bool
	HasPrev    bool
	HasNext    bool
	Acting     bool
}

// DetailController drives a single advertisement screen: the loaded
// record, the image gallery, the decision modal, and prev/next movement
// along the listing sequence it was opened from.
//
// DetailController 驱动单个广告页面：已加载的记录、图片画廊、决策弹窗
// 以及沿打开它的列表序列的前后移动。
type DetailController struct {
	mu         sync.Mutex
	service    DetailService
	id         int64
	ad         *moderation.Advertisement
	loading    bool
	notFound   bool
	err        error
	acting     bool
	generation uint64

	gallery *detailstate.Gallery
	modal   detailstate.DecisionModal
	nav     *detailstate.NavSequence

	onUpdate func(DetailSnapshot)
	log      *zap.Logger
}

// DetailOption customizes a DetailController.
type DetailOption func(*DetailController)

// WithDetailOnUpdate registers a snapshot callback. It runs outside the
// controller lock.
func WithDetailOnUpdate(fn func(DetailSnapshot)) DetailOption {
	return func(c *DetailController) {
		c.onUpdate = fn
	}
}

// WithDetailLogger sets the structured logger. A nil logger is ignored.
func WithDetailLogger(log *zap.Logger) DetailOption {
	return func(c *DetailController) {
		if log != nil {
			c.log = log
		}
	}
}

// NewDetailController creates a detail controller over a service. Call
// Load to show an advertisement.
//
// NewDetailController 在一个服务之上创建详情控制器。调用 Load 展示广告。
func NewDetailController(service DetailService, options ...DetailOption) *DetailController {
	c := &DetailController{
		service: service,
		gallery: detailstate.NewGallery(0),
		log:     zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current view state.
func (c *DetailController) Snapshot() DetailSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *DetailController) snapshotLocked() DetailSnapshot {
	snap := DetailSnapshot{
		Ad:         c.ad,
		Loading:    c.loading,
		NotFound:   c.notFound,
		Err:        c.err,
		ImageIndex: c.gallery.Index(),
		ImageCount: c.gallery.Count(),
		Modal:      c.modal.Kind(),
		CanConfirm: c.modal.CanConfirm(),
		Acting:     c.acting,
	}
	if c.nav != nil {
		_, snap.HasPrev = c.nav.PrevID()
		_, snap.HasNext = c.nav.NextID()
	}
	return snap
}

// Load opens an advertisement by id. The ids slice is the listing page the
// record was opened from; it powers prev/next and may be nil when the
// screen is reached directly by URL.
//
// Load 按 id 打开广告。ids 切片是打开该记录时所在的列表页，
// 为前后导航提供序列；通过 URL 直接进入时可以为 nil。
func (c *DetailController) Load(ctx context.Context, id int64, ids []int64) {
	c.mu.Lock()
	c.nav = detailstate.NewNavSequence(ids, id)
	c.loadLocked(ctx, id)
	c.mu.Unlock()
}

// Prev moves to the previous advertisement in the sequence, keeping the
// sequence itself.
func (c *DetailController) Prev(ctx context.Context) bool {
	return c.step(ctx, func() (int64, bool) { return c.nav.PrevID() })
}

// Next moves to the next advertisement in the sequence, keeping the
// sequence itself.
func (c *DetailController) Next(ctx context.Context) bool {
	return c.step(ctx, func() (int64, bool) { return c.nav.NextID() })
}

func (c *DetailController) step(ctx context.Context, pick func() (int64, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nav == nil {
		return false
	}
	id, ok := pick()
	if !ok {
		return false
	}
	c.nav.Jump(id)
	c.loadLocked(ctx, id)
	return true
}

// loadLocked starts an asynchronous fetch of the given id. The caller
// holds c.mu. A newer load supersedes the response of an older one.
func (c *DetailController) loadLocked(ctx context.Context, id int64) {
	c.generation++
	gen := c.generation
	c.id = id
	c.loading = true
	c.notFound = false
	c.err = nil
	c.modal.Close()
	snap := c.snapshotLocked()
	go c.publish(snap)

	go func() {
		ad, err := c.service.Detail(ctx, id)

		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			return
		}
		c.loading = false
		switch {
		case client.IsNotFound(err):
			c.ad = nil
			c.notFound = true
			c.gallery = detailstate.NewGallery(0)
		case err != nil:
			c.err = err
			c.log.Warn("advertisement load failed", zap.Int64("id", id), zap.Error(err))
		default:
			c.ad = ad
			c.gallery = detailstate.NewGallery(len(ad.Images))
		}
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.publish(snap)
	}()
}

// NextImage advances the gallery with wrap-around.
func (c *DetailController) NextImage() {
	c.mu.Lock()
	c.gallery.Next()
	c.mu.Unlock()
}

// PrevImage steps the gallery back with wrap-around.
func (c *DetailController) PrevImage() {
	c.mu.Lock()
	c.gallery.Prev()
	c.mu.Unlock()
}

// SelectImage jumps to a thumbnail by index.
func (c *DetailController) SelectImage(index int) {
	c.mu.Lock()
	c.gallery.Select(index)
	c.mu.Unlock()
}

// OpenReject opens the rejection modal with an empty draft.
func (c *DetailController) OpenReject() {
	c.mu.Lock()
	c.modal.Open(detailstate.ModalReject)
	c.mu.Unlock()
}

// OpenRequestChanges opens the request-changes modal with an empty draft.
func (c *DetailController) OpenRequestChanges() {
	c.mu.Lock()
	c.modal.Open(detailstate.ModalRequestChanges)
	c.mu.Unlock()
}

// CloseModal dismisses the modal and discards the draft.
func (c *DetailController) CloseModal() {
	c.mu.Lock()
	c.modal.Close()
	c.mu.Unlock()
}

// SetReason records the selected decision reason.
func (c *DetailController) SetReason(reason moderation.RejectionReason) {
	c.mu.Lock()
	c.modal.SetReason(reason)
	c.mu.Unlock()
}

// SetComment records the free-form decision comment.
func (c *DetailController) SetComment(comment string) {
	c.mu.Lock()
	c.modal.SetComment(comment)
	c.mu.Unlock()
}

// Approve performs the approve action immediately, without a modal. On
// success the loaded record reflects the new status.
//
// Approve 立即执行通过操作，无需弹窗。成功后已加载记录反映新状态。
func (c *DetailController) Approve(ctx context.Context) (*moderation.ActionResult, error) {
	c.mu.Lock()
	id := c.id
	if id <= 0 {
		c.mu.Unlock()
		return nil, client.ErrInvalidID
	}
	c.acting = true
	c.mu.Unlock()

	result, err := c.service.Approve(ctx, id)
	c.finishAction(result, err)
	return result, err
}

// Confirm submits the open modal's decision. On failure the modal stays
// open with the draft intact so the moderator can retry; on success the
// modal closes and the record reflects the new status.
//
// Confirm 提交当前弹窗的决策。失败时弹窗保持打开且草稿保留，
// 审核员可以重试；成功时弹窗关闭且记录反映新状态。
func (c *DetailController) Confirm(ctx context.Context) (*moderation.ActionResult, error) {
	c.mu.Lock()
	if !c.modal.CanConfirm() {
		c.mu.Unlock()
		return nil, ErrNoDecision
	}
	id := c.id
	kind := c.modal.Kind()
	decision := c.modal.Decision()
	c.acting = true
	c.mu.Unlock()

	var result *moderation.ActionResult
	var err error
	switch kind {
	case detailstate.ModalReject:
		result, err = c.service.Reject(ctx, id, decision)
	case detailstate.ModalRequestChanges:
		result, err = c.service.RequestChanges(ctx, id, decision)
	}

	c.mu.Lock()
	c.acting = false
	if err == nil {
		c.modal.Close()
	}
	c.mu.Unlock()
	c.finishAction(result, err)
	return result, err
}

// finishAction applies the outcome of a moderation action to the loaded
// record and publishes.
func (c *DetailController) finishAction(result *moderation.ActionResult, err error) {
	c.mu.Lock()
	c.acting = false
	if err != nil {
		c.err = err
		c.log.Warn("moderation action failed", zap.Int64("id", c.id), zap.Error(err))
	} else {
		c.err = nil
		if c.ad != nil && result != nil && result.Status != "" {
			c.ad.Status = result.Status
		}
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
}

func (c *DetailController) publish(snap DetailSnapshot) {
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
}
