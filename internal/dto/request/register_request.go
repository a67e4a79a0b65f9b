package request

// RegisterRequest 用户注册请求
// SmsCode 为第三方 OTP 服务校验通过后返回的凭证，由后端换发自己的 token
// 使用位置:
//   - internal/api/auth.go: Register
//   - internal/service/auth/service.go: Register
type RegisterRequest struct {
	Telephone string `json:"telephone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Nickname  string `json:"nickname" validate:"required"`
	SmsCode   string `json:"sms_code" validate:"required,len=6"`
}
