package client

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenProvider supplies the bearer token for outgoing requests. It is
// called once per request, so rotating providers work without client
// restarts.
//
// TokenProvider 为发出的请求提供 bearer 令牌。每个请求调用一次，
// 因此轮换令牌无需重启客户端。
type TokenProvider func() (string, error)

// StaticToken returns a provider that always yields the same token.
//
// StaticToken 返回始终给出同一令牌的提供者。
func StaticToken(token string) TokenProvider {
	return func() (string, error) {
		return token, nil
	}
}

// checkTokenExpiry inspects a JWT's exp claim without verifying the
// signature and reports ErrTokenExpired when it lies in the past. Signature
// verification belongs to the server; the client only wants to fail fast
// instead of spending a round trip on a guaranteed 401. Tokens that are not
// JWTs pass through untouched.
//
// checkTokenExpiry 在不校验签名的情况下检查 JWT 的 exp 声明，
// 过期时报告 ErrTokenExpired。签名校验属于服务端；客户端只想快速失败，
// 避免为注定的 401 浪费一次往返。非 JWT 令牌原样放行。
func checkTokenExpiry(token string, now time.Time) error {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque token, nothing to inspect.
		// 不透明令牌，无可检查内容。
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(now) {
		return fmt.Errorf("%w: expired at %s", ErrTokenExpired, exp.Format(time.RFC3339))
	}
	return nil
}
