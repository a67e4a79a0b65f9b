package respond

// GetGroupMemberListRespond 获取群成员列表响应中的单条记录
// 使用位置:
//   - internal/api/group.go: GetGroupMemberList
type GetGroupMemberListRespond struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"` // member 或 admin
}
