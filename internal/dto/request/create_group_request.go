package request

// CreateGroupRequest 创建群聊请求
// 使用位置:
//   - internal/api/group.go: CreateGroup
type CreateGroupRequest struct {
	Name      string   `json:"name" validate:"required,max=20"`
	Notice    string   `json:"notice"`
	MemberIds []string `json:"member_ids" validate:"required,min=1"`
}
