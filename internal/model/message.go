package model

import "time"

// 消息类型
const (
	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeVideo    = "video"
	MessageTypeAudio    = "audio"
	MessageTypeDocument = "document"
	MessageTypeArchive  = "archive"
	MessageTypeSticker  = "sticker"
	MessageTypeSystem   = "system"
)

// Message 消息
// 由服务端创建，客户端只读；撤回/删除均为软标记，本地从不物理移除
// 同一会话内按 CreatedAt 升序排列
type Message struct {
	Uuid           string    `json:"uuid"`            // 消息唯一标识
	ConversationId string    `json:"conversation_id"` // 所属会话
	SenderId       string    `json:"sender_id"`       // 发送者 uuid
	SenderName     string    `json:"sender_name"`     // 发送者昵称（冗余，避免渲染时查表）
	SenderAvatar   string    `json:"sender_avatar"`   // 发送者头像
	Type           string    `json:"type"`            // 消息类型，见上方常量
	Content        string    `json:"content"`         // 文本内容；非文本类型时为附件描述列表的 JSON
	Reply          string    `json:"reply"`           // 回复的消息 uuid，可为空
	Revoke         bool      `json:"revoke"`          // 已撤回
	SenderDelete   bool      `json:"sender_delete"`   // 仅发送方删除
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Attachment 附件描述
// 非文本消息的 Content 字段存储 []Attachment 的 JSON 编码
type Attachment struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"` // MIME 类型，如 "image/jpeg"
	FileSize int64  `json:"file_size"` // 字节数
	Url      string `json:"url"`       // 资源访问链接
}
