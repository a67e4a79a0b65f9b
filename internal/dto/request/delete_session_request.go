package request

// DeleteSessionRequest 删除会话请求（软删除）
// 使用位置:
//   - internal/api/session.go: DeleteSession
type DeleteSessionRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
}
