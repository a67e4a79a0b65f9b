package respond

// UserSessionListRespond 会话列表响应中的单条记录
// ReceiveId 是对端标识：单聊为对方用户 uuid，群聊为群 uuid
// 对端的名称/头像不在本响应中，由客户端二次查询后拼装（见 api.ResolveReceiver）
// 使用位置:
//   - internal/api/session.go: GetSessionList
type UserSessionListRespond struct {
	SessionId string `json:"session_id"`
	Type      string `json:"type"` // single 或 group
	ReceiveId string `json:"receive_id"`
	Deleted   bool   `json:"deleted"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
