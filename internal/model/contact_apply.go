package model

// ContactApply 好友申请中的对方用户快照
// 申请处于"收到"还是"已发出"状态由它所在的 store 决定，实体本身不带状态字段
type ContactApply struct {
	UserId    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Telephone string `json:"telephone"`
	Message   string `json:"message"` // 申请附带的留言
}
