package request

// LoginRequest 用户密码登录请求
// 使用位置:
//   - internal/api/auth.go: Login
//   - internal/service/auth/service.go: Login
type LoginRequest struct {
	Telephone string `json:"telephone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}
