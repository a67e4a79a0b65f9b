package model

// 会话类型
const (
	ConversationTypeSingle = "single" // 单聊
	ConversationTypeGroup  = "group"  // 群聊
)

// Conversation 会话
// Receiver 字段是派生数据：由客户端在拉取会话列表后按会话类型二次查询得到，
// 服务端原始记录并不携带
type Conversation struct {
	Uuid      string   `json:"uuid"`       // 会话唯一标识
	Type      string   `json:"type"`       // 会话类型，single 或 group
	Deleted   bool     `json:"deleted"`    // 软删除标记
	CreatedAt string   `json:"created_at"` // 创建时间
	UpdatedAt string   `json:"updated_at"` // 更新时间
	Receiver  Receiver `json:"receiver"`   // 解析后的对端身份（读取时 join，见 api.ResolveReceiver）
}

// Receiver 会话对端的统一视图
// 单聊时是对方用户，群聊时是群身份归一化成相同形状
type Receiver struct {
	Uuid   string `json:"uuid"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Type   string `json:"type"` // 与所属会话的 Type 一致
}
