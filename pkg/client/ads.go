package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

// ListAdvertisements fetches one page of listings filtered and sorted by
// params. Every selected status is serialized as a repeated status
// parameter; this is the canonical multi-status contract.
//
// ListAdvertisements 获取按 params 过滤和排序的一页广告。
// 所有被选状态都序列化为重复的 status 参数；这是规范的多状态契约。
//
// Parameters:
//   - ctx: Context for the request
//   - page: 1-based page number
//   - params: The filter/sort specification
//
// Returns:
//   - *moderation.PageResult: The page of listings plus pagination metadata
//   - error: A typed error on any non-success response
func (c *Client) ListAdvertisements(ctx context.Context, page int, params liststate.Params) (*moderation.PageResult, error) {
	if page < 1 {
		page = 1
	}
	query := params.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(c.limit))

	var result moderation.PageResult
	if err := c.do(ctx, http.MethodGet, "/ads", query, nil, &result); err != nil {
		return nil, err
	}
	if err := result.Pagination.Validate(); err != nil {
		return nil, fmt.Errorf("client: list response: %w", err)
	}
	return &result, nil
}

// GetAdvertisement fetches one listing with full detail and moderation
// history. A missing listing yields ErrNotFound.
//
// GetAdvertisement 获取一条广告的完整详情与审核历史。
// 广告不存在时返回 ErrNotFound。
func (c *Client) GetAdvertisement(ctx context.Context, id int64) (*moderation.Advertisement, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	var ad moderation.Advertisement
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ads/%d", id), nil, nil, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

// Approve marks the listing approved.
//
// Approve 将广告标记为已通过。
func (c *Client) Approve(ctx context.Context, id int64) (*moderation.ActionResult, error) {
	return c.postAction(ctx, id, moderation.ActionApprove, nil)
}

// Reject marks the listing rejected with the given decision. The decision
// must carry a reason.
//
// Reject 以给定决策将广告标记为已拒绝。决策必须携带原因。
func (c *Client) Reject(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}
	return c.postAction(ctx, id, moderation.ActionReject, &decision)
}

// RequestChanges returns the listing to the seller for changes; its status
// goes back to pending.
//
// RequestChanges 将广告退回卖家修改；其状态回到待审核。
func (c *Client) RequestChanges(ctx context.Context, id int64, decision moderation.Decision) (*moderation.ActionResult, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}
	return c.postAction(ctx, id, moderation.ActionRequestChanges, &decision)
}

// postAction posts one moderation action and decodes the structured result.
//
// postAction 发送一次审核操作并解码结构化结果。
func (c *Client) postAction(ctx context.Context, id int64, action moderation.Action, decision *moderation.Decision) (*moderation.ActionResult, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var body interface{}
	if decision != nil {
		body = decision
	}

	var result moderation.ActionResult
	path := fmt.Sprintf("/ads/%d/%s", id, action)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}
	if result.ID == 0 {
		result.ID = id
	}
	if result.Action == "" {
		result.Action = action
	}
	if result.Status == "" {
		result.Status = action.ResultingStatus()
	}
	return &result, nil
}
