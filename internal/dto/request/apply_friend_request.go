package request

// ApplyFriendRequest 发起好友申请请求
// 使用位置:
//   - internal/api/contact.go: ApplyFriend
type ApplyFriendRequest struct {
	ContactId string `json:"contact_id" validate:"required"`
	Message   string `json:"message" validate:"max=100"`
}
