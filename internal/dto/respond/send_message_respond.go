package respond

// SendMessageRespond 发送消息响应
// 使用位置:
//   - internal/api/message.go: SendMessage
type SendMessageRespond struct {
	Uuid string `json:"uuid"` // 服务端生成的消息 uuid
}
