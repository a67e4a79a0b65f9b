package respond

// RefreshTokenRespond 刷新 Token 响应
// 服务端轮换 refresh token，两个 token 都要整体替换存储
// 使用位置:
//   - internal/transport/client.go: refreshTokens
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
