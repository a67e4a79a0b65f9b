package request

// MessageActionRequest 撤回/删除消息请求
// 两个动作都是软标记，服务端只翻转对应布尔位
// 使用位置:
//   - internal/api/message.go: RevokeMessage, DeleteMessageForSender
type MessageActionRequest struct {
	MessageId string `json:"message_id" validate:"required"`
}
