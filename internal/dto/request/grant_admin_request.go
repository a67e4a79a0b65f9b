package request

// GrantAdminRequest 授予管理员请求
// 使用位置:
//   - internal/api/group.go: GrantAdmin
type GrantAdminRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
	MemberId       string `json:"member_id" validate:"required"`
}
