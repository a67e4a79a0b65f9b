package syncer

import (
	"context"
	"encoding/json"

	"kama_chat_client/internal/model"

	"go.uber.org/zap"
)

// onConversationEvent notification / newConversation 事件
// 重新拉取完整会话列表，逐条解析对端身份后整体覆盖会话 store
func (s *Syncer) onConversationEvent(json.RawMessage) {
	seq := s.seq.Next()
	go s.fetchConversations(s.background(), seq)
}

// refreshConversations 供 Bootstrap 使用的同步入口
func (s *Syncer) refreshConversations(ctx context.Context) {
	s.fetchConversations(ctx, s.seq.Next())
}

func (s *Syncer) fetchConversations(ctx context.Context, seq uint64) {
	list, err := s.api.GetSessionList(ctx)
	if err != nil {
		// 拉取失败时清空而不是保留过期数据
		zap.L().Error("会话列表拉取失败", zap.Error(err))
		s.stores.Conversations.Set(seq, nil)
		return
	}

	convs := make([]model.Conversation, 0, len(list))
	for _, raw := range list {
		receiver, err := s.api.ResolveReceiver(ctx, raw)
		if err != nil {
			// 单条解析失败不拖垮整个列表，用占位视图兜底
			zap.L().Warn("会话对端解析失败",
				zap.String("session_id", raw.SessionId),
				zap.Error(err),
			)
			receiver = model.Receiver{Uuid: raw.ReceiveId, Type: raw.Type}
		}
		convs = append(convs, model.Conversation{
			Uuid:      raw.SessionId,
			Type:      raw.Type,
			Deleted:   raw.Deleted,
			CreatedAt: raw.CreatedAt,
			UpdatedAt: raw.UpdatedAt,
			Receiver:  receiver,
		})
	}
	if !s.stores.Conversations.Set(seq, convs) {
		zap.L().Debug("会话列表写入被丢弃（序号过期）", zap.Uint64("seq", seq))
	}
}
