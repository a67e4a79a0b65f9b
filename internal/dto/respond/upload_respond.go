package respond

// UploadRespond 文件上传响应（头像、群头像、消息附件共用）
// 使用位置:
//   - internal/api/user.go: UploadAvatar
//   - internal/api/group.go: UploadGroupAvatar
//   - internal/api/message.go: UploadFile
type UploadRespond struct {
	Url string `json:"url"`
}
