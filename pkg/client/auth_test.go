package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestCheckTokenExpiry covers the pre-flight token inspection: opaque
// tokens and exp-less JWTs pass through, only an expired exp claim fails.
//
// TestCheckTokenExpiry 覆盖请求前的令牌检查：不透明令牌和无 exp 的 JWT
// 直接放行，只有过期的 exp 声明会失败。
func TestCheckTokenExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	cases := []struct {
		name    string
		token   string
		expired bool
	}{
		{"opaque token", "session-abc123", false},
		{"jwt without exp", sign(jwt.MapClaims{"sub": "m1"}), false},
		{"jwt not yet expired", sign(jwt.MapClaims{"exp": now.Add(time.Minute).Unix()}), false},
		{"jwt expired", sign(jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkTokenExpiry(tc.token, now)
			if tc.expired && !IsTokenExpired(err) {
				t.Errorf("expected ErrTokenExpired, got %v", err)
			}
			if !tc.expired && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
