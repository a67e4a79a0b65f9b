package respond

// GetFriendInfoRespond 获取好友（单聊对端）信息响应
// 使用位置:
//   - internal/api/contact.go: GetFriendInfo
type GetFriendInfoRespond struct {
	Uuid     string `json:"uuid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}
