package respond

// GetGroupInfoRespond 获取群信息响应
// 使用位置:
//   - internal/api/group.go: GetGroupInfo
type GetGroupInfoRespond struct {
	Uuid      string `json:"uuid"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Notice    string `json:"notice"`
	OwnerId   string `json:"owner_id"`
	MemberCnt int    `json:"member_cnt"`
	CreatedAt string `json:"created_at"`
}
