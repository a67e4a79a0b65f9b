package respond

// RegisterRespond 用户注册响应
// 注册成功即视为登录，字段与 LoginRespond 一致
// 使用位置:
//   - internal/api/auth.go: Register
type RegisterRespond = LoginRespond
