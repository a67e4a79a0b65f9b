package request

// RefreshTokenRequest 刷新 Access Token 请求
// 使用位置:
//   - internal/transport/client.go: refreshTokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
