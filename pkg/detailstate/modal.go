package detailstate

import "github.com/yourusername/admod/pkg/moderation"

// ModalKind identifies which decision modal is open.
//
// ModalKind 标识打开的是哪种决策弹窗。
type ModalKind string

const (
	ModalNone           ModalKind = ""
	ModalReject         ModalKind = "reject"
	ModalRequestChanges ModalKind = "change"
)

// DecisionModal is the reject / request-changes confirmation dialog: a kind
// plus a reason/comment draft. Approve needs no modal. The draft survives a
// failed submit so the moderator can retry without retyping.
//
// DecisionModal 是拒绝/退回修改的确认弹窗：类型加原因/评论草稿。
// 通过操作不需要弹窗。提交失败后草稿保留，审核员无需重新输入即可重试。
type DecisionModal struct {
	kind    ModalKind
	reason  moderation.RejectionReason
	comment string
}

// Open opens the modal of the given kind with an empty draft. Opening while
// another kind is showing replaces it and clears the draft.
//
// Open 以空草稿打开给定类型的弹窗。另一类型弹窗尚在展示时打开会替换它
// 并清空草稿。
func (m *DecisionModal) Open(kind ModalKind) {
	if kind != ModalReject && kind != ModalRequestChanges {
		return
	}
	if m.kind != kind {
		m.reason = ""
		m.comment = ""
	}
	m.kind = kind
}

// Close dismisses the modal and discards the draft.
//
// Close 关闭弹窗并丢弃草稿。
func (m *DecisionModal) Close() {
	m.kind = ModalNone
	m.reason = ""
	m.comment = ""
}

// Kind returns the open modal kind, ModalNone when closed.
//
// Kind 返回打开的弹窗类型，关闭时为 ModalNone。
func (m *DecisionModal) Kind() ModalKind {
	return m.kind
}

// IsOpen reports whether any modal is showing.
//
// IsOpen 报告是否有弹窗在展示。
func (m *DecisionModal) IsOpen() bool {
	return m.kind != ModalNone
}

// SetReason updates the reason draft.
//
// SetReason 更新原因草稿。
func (m *DecisionModal) SetReason(reason moderation.RejectionReason) {
	m.reason = reason
}

// SetComment updates the comment draft.
//
// SetComment 更新评论草稿。
func (m *DecisionModal) SetComment(comment string) {
	m.comment = comment
}

// CanConfirm reports whether the confirm action is enabled: a modal must be
// open and a reason selected. The comment is optional.
//
// CanConfirm 报告确认操作是否可用：弹窗必须打开且已选择原因。评论可选。
func (m *DecisionModal) CanConfirm() bool {
	return m.IsOpen() && m.reason != ""
}

// Decision returns the drafted decision payload.
//
// Decision 返回草拟的决策载荷。
func (m *DecisionModal) Decision() moderation.Decision {
	return moderation.Decision{Reason: m.reason, Comment: m.comment}
}
