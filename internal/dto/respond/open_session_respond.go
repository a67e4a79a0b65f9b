package respond

// OpenSessionRespond 打开会话响应
// 使用位置:
//   - internal/api/session.go: OpenSession
type OpenSessionRespond struct {
	SessionId string `json:"session_id"`
	Type      string `json:"type"`
	ReceiveId string `json:"receive_id"`
}
