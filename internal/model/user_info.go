// Package model 定义客户端侧的领域实体
// 实体均为普通 JSON 结构体，由 REST 响应反序列化得到，不做本地持久化
package model

// UserInfo 当前登录用户信息
// 登录/注册/启动恢复成功后写入 SessionUser store，登出时清空
type UserInfo struct {
	Uuid      string `json:"uuid"`      // 用户唯一标识，U 开头
	Nickname  string `json:"nickname"`  // 昵称
	Avatar    string `json:"avatar"`    // 头像相对路径
	Telephone string `json:"telephone"` // 手机号
	Email     string `json:"email"`     // 邮箱
	Gender    int8   `json:"gender"`    // 性别，0.未知，1.男，2.女
	Birthday  string `json:"birthday"`  // 生日，如 "2000-01-01"
	Signature string `json:"signature"` // 个性签名
	IsAdmin   int8   `json:"is_admin"`  // 是否管理员，0.否，1.是
	CreatedAt string `json:"created_at"`
}
