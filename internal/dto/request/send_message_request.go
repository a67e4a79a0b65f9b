package request

// SendMessageRequest 发送消息请求
// Content 在非文本类型时为附件描述列表的 JSON 编码
// 使用位置:
//   - internal/api/message.go: SendMessage
type SendMessageRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Content        string `json:"content"`
	Reply          string `json:"reply"`
}
