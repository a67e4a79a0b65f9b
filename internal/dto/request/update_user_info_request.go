package request

// UpdateUserInfoRequest 修改个人信息请求
// 使用位置:
//   - internal/api/user.go: UpdateUserInfo
type UpdateUserInfoRequest struct {
	Nickname  string `json:"nickname"`
	Birthday  string `json:"birthday"`
	Signature string `json:"signature"`
	Gender    int8   `json:"gender"`
}
