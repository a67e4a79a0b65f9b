// Package jwt 提供对本地存储 token 的只读解析
// 客户端没有签名密钥，不验证签名——签名验证是服务端的事；
// 这里只取声明里的用户 id 和过期时间，用于启动时恢复会话
package jwt

import (
	"time"

	"kama_chat_client/pkg/constants"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 与服务端签发的声明结构保持一致
type Claims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id,omitempty"` // 仅 Refresh Token 携带
	jwt.RegisteredClaims
}

// PeekClaims 不验证签名地解析 token 声明
func PeekClaims(tokenString string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// IsExpired 判断声明是否已过期
// 没有过期时间的 token 视为已过期，不做乐观假设
func IsExpired(c *Claims) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return time.Now().After(c.ExpiresAt.Time)
}

// IsRefreshExpired 判断 refresh token 声明是否已过期
// 没有显式过期时间时按签发时间加固定有效期估算；两者都没有时不下结论
func IsRefreshExpired(c *Claims) bool {
	if c.ExpiresAt != nil {
		return time.Now().After(c.ExpiresAt.Time)
	}
	if c.IssuedAt != nil {
		return time.Since(c.IssuedAt.Time) > constants.REFRESH_TOKEN_EXPIRY_HOURS*time.Hour
	}
	return false
}
