package model

// 群成员角色
const (
	GroupRoleMember = "member"
	GroupRoleAdmin  = "admin"
)

// GroupMember 群成员：用户快照加角色，作用域为单个会话
// 某会话的成员集合在每次成员变更事件后被整体替换，不做增量修补
type GroupMember struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"` // member 或 admin
}
