package request

// OpenSessionRequest 打开会话请求
// 单聊时 ReceiveId 为对方用户 uuid，群聊时为群 uuid
// 使用位置:
//   - internal/api/session.go: OpenSession
type OpenSessionRequest struct {
	ReceiveId string `json:"receive_id" validate:"required"`
}
