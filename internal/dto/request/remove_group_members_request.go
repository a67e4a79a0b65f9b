package request

// RemoveGroupMembersRequest 移除群成员请求
// 使用位置:
//   - internal/api/group.go: RemoveGroupMembers
type RemoveGroupMembersRequest struct {
	ConversationId string   `json:"conversation_id" validate:"required"`
	MemberIds      []string `json:"member_ids" validate:"required,min=1"`
}
