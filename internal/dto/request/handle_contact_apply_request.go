package request

// HandleContactApplyRequest 处理好友申请请求（通过/拒绝共用）
// 使用位置:
//   - internal/api/contact.go: PassContactApply, RefuseContactApply
type HandleContactApplyRequest struct {
	ApplicantId string `json:"applicant_id" validate:"required"`
}
