// Package chat 提供界面层的聊天动作入口
// 动作走 REST，发送成功后再通过实时通道通知服务端广播；
// 进入/离开会话时向服务端声明房间，便于服务端定向推送
package chat

import (
	"context"
	"encoding/json"

	"kama_chat_client/internal/api"
	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/model"
	"kama_chat_client/internal/realtime"
	"kama_chat_client/internal/store"
	"kama_chat_client/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service 聊天动作服务
type Service struct {
	api    *api.API
	ch     *realtime.Channel
	stores *store.Stores
}

// NewService 构造函数
func NewService(a *api.API, ch *realtime.Channel, stores *store.Stores) *Service {
	return &Service{api: a, ch: ch, stores: stores}
}

// roomPayload 房间进出事件的数据
type roomPayload struct {
	ConversationId string `json:"conversation_id"`
}

// sendNotifyPayload 消息发送通知的数据
// ClientTag 是客户端生成的一次性标识，服务端广播时原样带回，
// 发送方可据此识别自己刚发出的消息
type sendNotifyPayload struct {
	ConversationId string `json:"conversation_id"`
	MessageId      string `json:"message_id"`
	ClientTag      string `json:"client_tag"`
}

// EnterConversation 进入会话
// 更新当前会话选择并向服务端声明加入房间
func (s *Service) EnterConversation(conversationId string) {
	prev := s.stores.ActiveChat.Get()
	if prev != "" && prev != conversationId {
		if err := s.ch.Emit(realtime.EmitLeaveRoom, roomPayload{ConversationId: prev}); err != nil {
			zap.L().Warn("leaveRoom 发送失败", zap.Error(err))
		}
	}
	s.stores.ActiveChat.Set(conversationId)
	if err := s.ch.Emit(realtime.EmitJoinRoom, roomPayload{ConversationId: conversationId}); err != nil {
		zap.L().Warn("joinRoom 发送失败", zap.Error(err))
	}
}

// LeaveConversation 离开当前会话
func (s *Service) LeaveConversation() {
	prev := s.stores.ActiveChat.Get()
	if prev == "" {
		return
	}
	s.stores.ActiveChat.Set("")
	if err := s.ch.Emit(realtime.EmitLeaveRoom, roomPayload{ConversationId: prev}); err != nil {
		zap.L().Warn("leaveRoom 发送失败", zap.Error(err))
	}
}

// SendText 发送文本消息
func (s *Service) SendText(ctx context.Context, conversationId, content, reply string) error {
	return s.send(ctx, request.SendMessageRequest{
		ConversationId: conversationId,
		Type:           model.MessageTypeText,
		Content:        content,
		Reply:          reply,
	})
}

// SendAttachments 发送附件消息
// 附件需先经 api.UploadFile 上传拿到 url，Content 存附件描述列表的 JSON
func (s *Service) SendAttachments(ctx context.Context, conversationId, msgType string, attachments []model.Attachment) error {
	content, err := json.Marshal(attachments)
	if err != nil {
		return err
	}
	return s.send(ctx, request.SendMessageRequest{
		ConversationId: conversationId,
		Type:           msgType,
		Content:        string(content),
	})
}

// send 统一发送路径：校验 -> REST 落库 -> 通道广播通知
func (s *Service) send(ctx context.Context, req request.SendMessageRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	rsp, err := s.api.SendMessage(ctx, req)
	if err != nil {
		return err
	}
	notify := sendNotifyPayload{
		ConversationId: req.ConversationId,
		MessageId:      rsp.Uuid,
		ClientTag:      uuid.NewString(),
	}
	if err := s.ch.Emit(realtime.EmitSendMessage, notify); err != nil {
		// 广播通知失败不回滚消息：消息已经落库，接收方会在下一次事件或打开会话时拉到
		zap.L().Warn("sendMessage 通知发送失败", zap.Error(err))
	}
	return nil
}

// Revoke 撤回消息
func (s *Service) Revoke(ctx context.Context, messageId string) error {
	return s.api.RevokeMessage(ctx, request.MessageActionRequest{MessageId: messageId})
}

// DeleteForMe 删除消息（仅自己不可见）
func (s *Service) DeleteForMe(ctx context.Context, messageId string) error {
	return s.api.DeleteMessageForSender(ctx, request.MessageActionRequest{MessageId: messageId})
}
