package respond

// MyApplyListRespond 我发出的好友申请列表响应中的单条记录
// 使用位置:
//   - internal/api/contact.go: GetMyApplyList
type MyApplyListRespond struct {
	ContactId     string `json:"contact_id"`
	ContactName   string `json:"contact_name"`
	ContactAvatar string `json:"contact_avatar"`
	Telephone     string `json:"telephone"`
	Message       string `json:"message"`
}
