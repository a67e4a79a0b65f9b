package syncer

import (
	"context"
	"encoding/json"
	"sort"

	"kama_chat_client/internal/model"

	"go.uber.org/zap"
)

// newMessagePayload newMessage 事件携带的数据
type newMessagePayload struct {
	ConversationId string `json:"conversation_id"`
}

// onNewMessage newMessage 事件
// 只重新拉取受影响会话的消息列表，按发送时间升序排序后覆盖该会话的切片，
// 其他会话的消息不受影响
func (s *Syncer) onNewMessage(data json.RawMessage) {
	var payload newMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ConversationId == "" {
		zap.L().Error("newMessage 事件数据异常", zap.Error(err))
		return
	}
	seq := s.seq.Next()
	go s.fetchMessages(s.background(), payload.ConversationId, seq)
}

// RefreshMessages 打开会话时的主动拉取入口
func (s *Syncer) RefreshMessages(ctx context.Context, conversationId string) {
	s.fetchMessages(ctx, conversationId, s.seq.Next())
}

func (s *Syncer) fetchMessages(ctx context.Context, conversationId string, seq uint64) {
	list, err := s.api.GetMessageList(ctx, conversationId)
	if err != nil {
		zap.L().Error("消息列表拉取失败",
			zap.String("conversation_id", conversationId),
			zap.Error(err),
		)
		s.stores.Messages.Set(conversationId, seq, nil)
		return
	}

	messages := make([]model.Message, 0, len(list))
	for _, raw := range list {
		messages = append(messages, model.Message{
			Uuid:           raw.Uuid,
			ConversationId: raw.ConversationId,
			SenderId:       raw.SenderId,
			SenderName:     raw.SenderName,
			SenderAvatar:   raw.SenderAvatar,
			Type:           raw.Type,
			Content:        raw.Content,
			Reply:          raw.Reply,
			Revoke:         raw.Revoke,
			SenderDelete:   raw.SenderDelete,
			CreatedAt:      raw.CreatedAt,
			UpdatedAt:      raw.UpdatedAt,
		})
	}
	// 会话内按创建时间非递减排序；相同时间保持服务端返回顺序
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	if !s.stores.Messages.Set(conversationId, seq, messages) {
		zap.L().Debug("消息列表写入被丢弃（序号过期）",
			zap.String("conversation_id", conversationId),
			zap.Uint64("seq", seq),
		)
	}
}
