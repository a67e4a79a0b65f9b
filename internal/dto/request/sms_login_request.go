package request

// SmsLoginRequest 短信验证码登录请求
// 使用位置:
//   - internal/api/auth.go: SmsLogin
type SmsLoginRequest struct {
	Telephone string `json:"telephone" validate:"required"`
	SmsCode   string `json:"sms_code" validate:"required,len=6"`
}
