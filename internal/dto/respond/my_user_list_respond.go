package respond

// MyUserListRespond 好友列表响应中的单条记录
// 使用位置:
//   - internal/api/contact.go: GetFriendList
type MyUserListRespond struct {
	UserId   string `json:"user_id"`
	UserName string `json:"user_name"`
	Avatar   string `json:"avatar"`
}
