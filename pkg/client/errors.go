// Package client implements the typed REST client for the moderation API.
// It issues the listing, detail, moderation-action and statistics calls and
// normalizes every non-success response into a typed, inspectable error.
//
// Package client 实现审核 API 的类型化 REST 客户端。
// 它发起列表、详情、审核操作与统计调用，并将所有非成功响应
// 规范化为可检查的类型化错误。
package client

import (
	"errors"
	"fmt"
)

// Standard errors returned by the client.
//
// 客户端可能返回的标准错误。
var (
	// ErrNotFound is returned when the requested entity does not exist.
	// 当请求的实体不存在时返回 ErrNotFound。
	ErrNotFound = errors.New("client: not found")

	// ErrUnauthorized is returned on 401/403 responses.
	// 收到 401/403 响应时返回 ErrUnauthorized。
	ErrUnauthorized = errors.New("client: unauthorized")

	// ErrServer is returned on 5xx responses.
	// 收到 5xx 响应时返回 ErrServer。
	ErrServer = errors.New("client: server error")

	// ErrTokenExpired is returned before a request is issued when the
	// configured bearer token has already expired.
	// 配置的 bearer 令牌已过期时，在发出请求前返回 ErrTokenExpired。
	ErrTokenExpired = errors.New("client: bearer token expired")

	// ErrInvalidID is returned when an operation is attempted without a
	// valid positive id.
	// 在没有合法正数 id 的情况下尝试操作时返回 ErrInvalidID。
	ErrInvalidID = errors.New("client: invalid id")
)

// APIError carries the HTTP detail of a non-success response. It wraps one
// of the sentinel errors above so callers can branch with errors.Is.
//
// APIError 携带非成功响应的 HTTP 细节。它包装上面的哨兵错误之一，
// 调用方可用 errors.Is 分支。
type APIError struct {
	StatusCode int    // HTTP status / HTTP 状态码
	Endpoint   string // Request path / 请求路径
	Body       string // Response body, truncated / 截断后的响应体
	Err        error  // Wrapped sentinel / 被包装的哨兵错误
}

// Error returns the formatted message.
//
// Error 返回格式化的错误消息。
func (e *APIError) Error() string {
	return fmt.Sprintf("client: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap returns the wrapped sentinel, enabling errors.Is checks.
//
// Unwrap 返回被包装的哨兵错误，支持 errors.Is 检查。
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates a missing entity.
//
// IsNotFound 如果错误表示实体缺失，则返回 true。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized returns true if the error indicates missing or rejected
// credentials.
//
// IsUnauthorized 如果错误表示凭证缺失或被拒绝，则返回 true。
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsServerError returns true if the error indicates a 5xx response.
//
// IsServerError 如果错误表示 5xx 响应，则返回 true。
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// IsTokenExpired returns true if the error indicates an expired bearer
// token.
//
// IsTokenExpired 如果错误表示 bearer 令牌过期，则返回 true。
func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}
