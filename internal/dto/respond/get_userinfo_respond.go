package respond

// GetUserInfoRespond 获取用户信息响应
// 使用位置:
//   - internal/api/user.go: GetUserInfo
type GetUserInfoRespond struct {
	Uuid      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Telephone string `json:"telephone"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Gender    int8   `json:"gender"`
	Birthday  string `json:"birthday"`
	Signature string `json:"signature"`
	IsAdmin   int8   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}
