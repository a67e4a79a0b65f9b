package respond

// CreateGroupRespond 创建群聊响应
// 使用位置:
//   - internal/api/group.go: CreateGroup
type CreateGroupRespond struct {
	ConversationId string `json:"conversation_id"` // 随群创建的会话
	GroupId        string `json:"group_id"`
}
