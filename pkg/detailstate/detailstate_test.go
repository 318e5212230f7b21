package detailstate

import (
	"testing"

	"github.com/yourusername/admod/pkg/moderation"
)

// TestGalleryWrap verifies modulo wrapping in both directions: with three
// images, next at index 2 yields 0, prev at index 0 yields 2.
//
// TestGalleryWrap 验证两个方向的取模回绕：三张图片时，
// 在索引 2 处下一张得到 0，在索引 0 处上一张得到 2。
func TestGalleryWrap(t *testing.T) {
	g := NewGallery(3)

	g.Next()
	g.Next()
	if g.Index() != 2 {
		t.Fatalf("expected index 2, got %d", g.Index())
	}
	g.Next()
	if g.Index() != 0 {
		t.Errorf("next at last image should wrap to 0, got %d", g.Index())
	}

	g.Prev()
	if g.Index() != 2 {
		t.Errorf("prev at first image should wrap to 2, got %d", g.Index())
	}
}

// TestGallerySelectAndEmpty verifies thumbnail selection bounds and the
// empty-gallery safety.
//
// TestGallerySelectAndEmpty 验证缩略图选择的边界以及空画廊的安全性。
func TestGallerySelectAndEmpty(t *testing.T) {
	g := NewGallery(4)
	g.Select(3)
	if g.Index() != 3 {
		t.Errorf("expected index 3, got %d", g.Index())
	}
	g.Select(7)
	g.Select(-1)
	if g.Index() != 3 {
		t.Errorf("out-of-range select should be ignored, got %d", g.Index())
	}

	empty := NewGallery(0)
	empty.Next()
	empty.Prev()
	if empty.Index() != 0 {
		t.Errorf("empty gallery must stay at 0, got %d", empty.Index())
	}
}

// TestModalConfirmGate verifies that confirm is enabled exactly when a modal
// is open with a non-empty reason.
//
// TestModalConfirmGate 验证仅在弹窗打开且原因非空时确认可用。
func TestModalConfirmGate(t *testing.T) {
	m := &DecisionModal{}
	if m.CanConfirm() {
		t.Error("closed modal must not confirm")
	}

	m.Open(ModalReject)
	if m.CanConfirm() {
		t.Error("confirm must stay disabled without a reason")
	}

	m.SetReason(moderation.ReasonWrongCategory)
	m.SetComment("перенесите в Транспорт")
	if !m.CanConfirm() {
		t.Error("confirm should be enabled with a reason selected")
	}

	d := m.Decision()
	if d.Reason != moderation.ReasonWrongCategory || d.Comment != "перенесите в Транспорт" {
		t.Errorf("unexpected decision payload: %+v", d)
	}

	m.Close()
	if m.IsOpen() || m.CanConfirm() {
		t.Error("close must dismiss the modal and disable confirm")
	}
	if m.Decision().Reason != "" {
		t.Error("close must discard the draft")
	}
}

// TestModalSwitchClearsDraft verifies that switching modal kinds clears the
// draft, while reopening the same kind keeps it.
//
// TestModalSwitchClearsDraft 验证切换弹窗类型会清空草稿，
// 重新打开同一类型则保留草稿。
func TestModalSwitchClearsDraft(t *testing.T) {
	m := &DecisionModal{}
	m.Open(ModalReject)
	m.SetReason(moderation.ReasonFraudSuspicion)

	m.Open(ModalReject)
	if m.Decision().Reason != moderation.ReasonFraudSuspicion {
		t.Error("reopening the same kind should keep the draft")
	}

	m.Open(ModalRequestChanges)
	if m.Decision().Reason != "" {
		t.Error("switching kinds should clear the draft")
	}
}

// TestNavSequence verifies prev/next enablement across the carried id
// sequence, including both boundaries and the no-sequence case.
//
// TestNavSequence 验证携带 id 序列上的上一条/下一条可用性，
// 包括两端边界和未携带序列的情况。
func TestNavSequence(t *testing.T) {
	nav := NewNavSequence([]int64{10, 20, 30}, 20)

	prev, ok := nav.PrevID()
	if !ok || prev != 10 {
		t.Errorf("expected prev 10, got %d ok=%v", prev, ok)
	}
	next, ok := nav.NextID()
	if !ok || next != 30 {
		t.Errorf("expected next 30, got %d ok=%v", next, ok)
	}

	nav.Jump(10)
	if _, ok := nav.PrevID(); ok {
		t.Error("prev must be disabled at the first id")
	}
	if next, ok := nav.NextID(); !ok || next != 20 {
		t.Errorf("expected next 20 at the first id, got %d ok=%v", next, ok)
	}

	nav.Jump(30)
	if _, ok := nav.NextID(); ok {
		t.Error("next must be disabled at the last id")
	}

	// Direct navigation: no carried sequence.
	// 直接打开详情：未携带序列。
	direct := NewNavSequence(nil, 42)
	if _, ok := direct.PrevID(); ok {
		t.Error("prev must be disabled without a carried sequence")
	}
	if _, ok := direct.NextID(); ok {
		t.Error("next must be disabled without a carried sequence")
	}

	// Current id missing from the sequence behaves like direct navigation.
	// 当前 id 不在序列中时，行为等同直接打开。
	missing := NewNavSequence([]int64{1, 2, 3}, 99)
	if _, ok := missing.PrevID(); ok {
		t.Error("prev must be disabled when current id is not in the sequence")
	}
	if _, ok := missing.NextID(); ok {
		t.Error("next must be disabled when current id is not in the sequence")
	}
}
