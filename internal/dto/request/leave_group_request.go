package request

// LeaveGroupRequest 退出群聊请求
// 使用位置:
//   - internal/api/group.go: LeaveGroup
type LeaveGroupRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
}
