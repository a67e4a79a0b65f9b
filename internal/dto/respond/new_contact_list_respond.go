package respond

// NewContactListRespond 收到的好友申请列表响应中的单条记录
// 使用位置:
//   - internal/api/contact.go: GetNewContactList
type NewContactListRespond struct {
	ApplicantId   string `json:"applicant_id"`
	ContactName   string `json:"contact_name"`
	ContactAvatar string `json:"contact_avatar"`
	Telephone     string `json:"telephone"`
	Message       string `json:"message"`
}
