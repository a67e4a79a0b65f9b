package model

// Friend 好友列表中的用户快照
type Friend struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}
