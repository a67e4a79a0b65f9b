package request

// SendSmsCodeRequest 发送短信验证码请求
// 使用位置:
//   - internal/api/auth.go: SendSmsCode
type SendSmsCodeRequest struct {
	Telephone string `json:"telephone" validate:"required"`
}
