package board

import "errors"

// ErrNoDecision is returned by Confirm when no modal is open or the
// reason has not been selected yet.
//
// ErrNoDecision 在没有打开弹窗或尚未选择原因时由 Confirm 返回。
var ErrNoDecision = errors.New("board: decision modal has no confirmable decision")
