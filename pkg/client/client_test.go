package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

// TestListAdvertisementsQuery verifies the request serialization: every
// selected status as a repeated parameter, plus page and limit.
//
// TestListAdvertisementsQuery 验证请求序列化：所有被选状态
// 作为重复参数，加上页码与页大小。
func TestListAdvertisementsQuery(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ads" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(moderation.PageResult{
			Ads:        []moderation.Advertisement{{ID: 1, Status: moderation.StatusPending}},
			Pagination: moderation.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42},
		})
	}))
	defer server.Close()

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	params := liststate.Params{
		Statuses: []moderation.Status{moderation.StatusPending, moderation.StatusRejected},
		Search:   "гитара",
		SortBy:   liststate.SortByPrice,
	}
	result, err := c.ListAdvertisements(context.Background(), 2, params)
	if err != nil {
		t.Fatalf("ListAdvertisements failed: %v", err)
	}

	if got := gotQuery["status"]; len(got) != 2 || got[0] != "pending" || got[1] != "rejected" {
		t.Errorf("expected repeated status parameters, got %v", got)
	}
	if got := gotQuery["page"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("expected page=2, got %v", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "10" {
		t.Errorf("expected default limit=10, got %v", got)
	}
	if got := gotQuery["search"]; len(got) != 1 || got[0] != "гитара" {
		t.Errorf("expected search parameter, got %v", got)
	}

	if result.Pagination.TotalItems != 42 {
		t.Errorf("expected 42 total items, got %d", result.Pagination.TotalItems)
	}
	if len(result.IDs()) != 1 || result.IDs()[0] != 1 {
		t.Errorf("unexpected ids: %v", result.IDs())
	}
}

// TestErrorNormalization verifies that non-success statuses map onto the
// sentinel errors.
//
// TestErrorNormalization 验证非成功状态映射到哨兵错误。
func TestErrorNormalization(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusNotFound, IsNotFound, "not found"},
		{http.StatusUnauthorized, IsUnauthorized, "unauthorized"},
		{http.StatusForbidden, IsUnauthorized, "forbidden"},
		{http.StatusInternalServerError, IsServerError, "server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			defer server.Close()

			c, _ := New(server.URL)
			_, err := c.GetAdvertisement(context.Background(), 7)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tc.check(err) {
				t.Errorf("error %v does not match sentinel for status %d", err, tc.status)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, apiErr.StatusCode)
			}
		})
	}
}

// TestActionResult verifies that moderation actions post the decision body
// and return a structured result rather than a message string.
//
// TestActionResult 验证审核操作发送决策请求体，并返回结构化结果
// 而不是消息字符串。
func TestActionResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ads/5/reject" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var decision moderation.Decision
		if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
			t.Fatalf("decode decision: %v", err)
		}
		if decision.Reason != moderation.ReasonProhibitedItem {
			t.Errorf("unexpected reason %q", decision.Reason)
		}
		json.NewEncoder(w).Encode(moderation.ActionResult{
			ID:     5,
			Action: moderation.ActionReject,
			Status: moderation.StatusRejected,
		})
	}))
	defer server.Close()

	c, _ := New(server.URL)
	result, err := c.Reject(context.Background(), 5, moderation.Decision{
		Reason:  moderation.ReasonProhibitedItem,
		Comment: "оружие",
	})
	if err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if result.Status != moderation.StatusRejected || result.Action != moderation.ActionReject {
		t.Errorf("unexpected result: %+v", result)
	}
}

// TestWithTimeout verifies the timeout option reaches the HTTP client and
// that non-positive values keep the default.
//
// TestWithTimeout 验证超时选项会作用到 HTTP 客户端，
// 非正值则保留默认超时。
func TestWithTimeout(t *testing.T) {
	c, err := New("http://localhost:3001", WithTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.httpClient.Timeout != 3*time.Second {
		t.Errorf("timeout not applied: %v", c.httpClient.Timeout)
	}

	c, _ = New("http://localhost:3001", WithTimeout(0))
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("zero timeout must keep the default, got %v", c.httpClient.Timeout)
	}
}

// TestActionResultBackfill verifies that a sparse action response still
// yields a complete result: id, action and the status the action implies.
//
// TestActionResultBackfill 验证稀疏的操作响应仍然得到完整结果：
// id、操作以及该操作蕴含的状态。
func TestActionResultBackfill(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	c, _ := New(server.URL)
	result, err := c.Approve(context.Background(), 5)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if result.ID != 5 || result.Action != moderation.ActionApprove {
		t.Errorf("id/action not backfilled: %+v", result)
	}
	if result.Status != moderation.StatusApproved {
		t.Errorf("status not backfilled from the action: %q", result.Status)
	}

	result, err = c.RequestChanges(context.Background(), 5, moderation.Decision{Reason: moderation.ReasonOther})
	if err != nil {
		t.Fatalf("RequestChanges failed: %v", err)
	}
	if result.Status != moderation.StatusPending {
		t.Errorf("request-changes must imply pending, got %q", result.Status)
	}
}

// TestRejectRequiresReason verifies that a decision without a reason fails
// before any request is made.
//
// TestRejectRequiresReason 验证没有原因的决策在发出请求前即失败。
func TestRejectRequiresReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	}))
	defer server.Close()

	c, _ := New(server.URL)
	if _, err := c.Reject(context.Background(), 5, moderation.Decision{Comment: "x"}); err == nil {
		t.Error("expected validation error")
	}
	if _, err := c.RequestChanges(context.Background(), 5, moderation.Decision{}); err == nil {
		t.Error("expected validation error")
	}
}

// TestInvalidID verifies the invalid-id guard on id-keyed operations.
//
// TestInvalidID 验证按 id 操作的非法 id 防护。
func TestInvalidID(t *testing.T) {
	c, _ := New("http://127.0.0.1:0")
	if _, err := c.GetAdvertisement(context.Background(), 0); err != ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := c.Approve(context.Background(), -4); err != ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

// TestExpiredTokenFailsFast verifies that an expired JWT bearer token fails
// before a round trip, while a valid one is attached as the Authorization
// header.
//
// TestExpiredTokenFailsFast 验证过期的 JWT bearer 令牌在发起往返前失败，
// 而有效令牌会作为 Authorization 头附加。
func TestExpiredTokenFailsFast(t *testing.T) {
	signed := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "moderator-1",
			"exp": exp.Unix(),
		})
		s, err := token.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return s
	}

	requests := 0
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(moderation.SummaryStats{})
	}))
	defer server.Close()

	expired, _ := New(server.URL, WithToken(signed(time.Now().Add(-time.Hour))))
	if _, err := expired.StatsSummary(context.Background()); !IsTokenExpired(err) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
	if requests != 0 {
		t.Errorf("expired token must not reach the server, saw %d requests", requests)
	}

	valid, _ := New(server.URL, WithToken(signed(time.Now().Add(time.Hour))))
	if _, err := valid.StatsSummary(context.Background()); err != nil {
		t.Fatalf("StatsSummary failed: %v", err)
	}
	if gotAuth == "" {
		t.Error("expected Authorization header on the request")
	}
}

// TestCurrentModerator verifies the profile read and the permission helper.
//
// TestCurrentModerator 验证档案读取与权限辅助方法。
func TestCurrentModerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/moderators/me" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(moderation.Moderator{
			ID:          1,
			Name:        "Анна",
			Permissions: []moderation.Permission{moderation.PermApproveAds, moderation.PermViewStats},
		})
	}))
	defer server.Close()

	c, _ := New(server.URL)
	m, err := c.CurrentModerator(context.Background())
	if err != nil {
		t.Fatalf("CurrentModerator failed: %v", err)
	}
	if !m.Can(moderation.PermApproveAds) {
		t.Error("expected approve permission")
	}
	if m.Can(moderation.PermRejectAds) {
		t.Error("reject permission should be absent")
	}
}
