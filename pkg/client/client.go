package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultPageLimit is the page size requested from the listing
	// endpoint unless configured otherwise.
	//
	// DefaultPageLimit 是未另行配置时向列表端点请求的页大小。
	DefaultPageLimit = 10

	defaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of an error response body is kept.
	// maxErrorBody 限制错误响应体保留的长度。
	maxErrorBody = 512
)

// Client is the moderation API client. It is safe for concurrent use.
//
// Client 是审核 API 客户端，可并发使用。
type Client struct {
	baseURL    string
	httpClient *http.Client
	limit      int
	token      TokenProvider
	log        *zap.Logger
	now        func() time.Time
}

// ClientOption configures a Client.
//
// ClientOption 配置 Client。
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
//
// WithHTTPClient 替换底层 HTTP 客户端。
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
// Non-positive values are ignored. Apply after WithHTTPClient to override
// a custom client's timeout.
//
// WithTimeout 设置底层 HTTP 客户端的单次请求超时。非正值被忽略。
// 若与 WithHTTPClient 同用，放在其后可覆盖自定义客户端的超时。
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithPageLimit sets the page size requested from the listing endpoint.
//
// WithPageLimit 设置向列表端点请求的页大小。
func WithPageLimit(limit int) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithToken installs a static bearer token.
//
// WithToken 安装静态 bearer 令牌。
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = StaticToken(token)
	}
}

// WithTokenProvider installs a dynamic token source.
//
// WithTokenProvider 安装动态令牌来源。
func WithTokenProvider(provider TokenProvider) ClientOption {
	return func(c *Client) {
		c.token = provider
	}
}

// WithLogger attaches a structured logger.
//
// WithLogger 附加结构化日志器。
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the API at baseURL.
//
// New 创建指向 baseURL 的 API 客户端。
//
// Parameters:
//   - baseURL: Root of the moderation API, e.g. "http://localhost:8080"
//   - options: Functional options
//
// Returns:
//   - *Client: A ready-to-use client
//   - error: An error when baseURL is empty or unparsable
func New(baseURL string, options ...ClientOption) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limit:      DefaultPageLimit,
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// do issues one request and decodes a JSON response into out (when out is
// non-nil). Non-2xx responses become *APIError wrapping the matching
// sentinel. Every request carries an X-Request-ID for log correlation.
//
// do 发出一次请求，并在 out 非 nil 时将 JSON 响应解码到 out。
// 非 2xx 响应成为包装相应哨兵错误的 *APIError。
// 每个请求都携带 X-Request-ID 用于日志关联。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("client: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.token != nil {
		token, err := c.token()
		if err != nil {
			return fmt.Errorf("client: token provider: %w", err)
		}
		if token != "" {
			if err := checkTokenExpiry(token, c.now()); err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(path, requestID, resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		// 读空响应体以便复用连接。
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) errorFromResponse(path, requestID string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	bodyText := strings.TrimSpace(string(raw))

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case resp.StatusCode >= 500:
		sentinel = ErrServer
	default:
		sentinel = fmt.Errorf("client: unexpected status %d", resp.StatusCode)
	}

	c.log.Warn("api request failed",
		zap.String("endpoint", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
	)

	return &APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   path,
		Body:       bodyText,
		Err:        sentinel,
	}
}
