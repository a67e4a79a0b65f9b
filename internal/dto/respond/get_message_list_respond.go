package respond

import "time"

// GetMessageListRespond 获取消息列表响应中的单条记录
// 使用位置:
//   - internal/api/message.go: GetMessageList
type GetMessageListRespond struct {
	Uuid           string    `json:"uuid"`
	ConversationId string    `json:"conversation_id"`
	SenderId       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderAvatar   string    `json:"sender_avatar"`
	Type           string    `json:"type"`
	Content        string    `json:"content"`
	Reply          string    `json:"reply"`
	Revoke         bool      `json:"revoke"`
	SenderDelete   bool      `json:"sender_delete"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
