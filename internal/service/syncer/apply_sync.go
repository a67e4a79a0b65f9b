package syncer

import (
	"context"
	"encoding/json"

	"kama_chat_client/internal/model"

	"go.uber.org/zap"
)

// onFriendRequest friendRequest 事件：收到新的好友申请
func (s *Syncer) onFriendRequest(json.RawMessage) {
	seq := s.seq.Next()
	go s.fetchIncomingApplies(s.background(), seq)
}

// onSentFriendRequest sentFriendRequest 事件：我发出的申请状态有变化
func (s *Syncer) onSentFriendRequest(json.RawMessage) {
	seq := s.seq.Next()
	go s.fetchSentApplies(s.background(), seq)
}

// onFriendRequestAccepted friendRequestAccepted 事件：申请被通过
// 两个申请桶都会变化，好友列表也随之增员，三者都重新拉取
func (s *Syncer) onFriendRequestAccepted(json.RawMessage) {
	incomingSeq := s.seq.Next()
	sentSeq := s.seq.Next()
	friendSeq := s.seq.Next()
	go s.fetchIncomingApplies(s.background(), incomingSeq)
	go s.fetchSentApplies(s.background(), sentSeq)
	go s.fetchFriends(s.background(), friendSeq)
}

func (s *Syncer) refreshIncomingApplies(ctx context.Context) {
	s.fetchIncomingApplies(ctx, s.seq.Next())
}

func (s *Syncer) refreshSentApplies(ctx context.Context) {
	s.fetchSentApplies(ctx, s.seq.Next())
}

func (s *Syncer) refreshFriends(ctx context.Context) {
	s.fetchFriends(ctx, s.seq.Next())
}

// fetchIncomingApplies 拉取收到的申请桶并整体覆盖
// api 层已把 404 归一化为空列表，这里的错误只剩真正的失败
func (s *Syncer) fetchIncomingApplies(ctx context.Context, seq uint64) {
	list, err := s.api.GetNewContactList(ctx)
	if err != nil {
		zap.L().Error("好友申请列表拉取失败", zap.Error(err))
		s.stores.Applies.SetIncoming(seq, nil)
		return
	}
	applies := make([]model.ContactApply, 0, len(list))
	for _, raw := range list {
		applies = append(applies, model.ContactApply{
			UserId:    raw.ApplicantId,
			Nickname:  raw.ContactName,
			Avatar:    raw.ContactAvatar,
			Telephone: raw.Telephone,
			Message:   raw.Message,
		})
	}
	s.stores.Applies.SetIncoming(seq, applies)
}

// fetchSentApplies 拉取发出的申请桶并整体覆盖
func (s *Syncer) fetchSentApplies(ctx context.Context, seq uint64) {
	list, err := s.api.GetMyApplyList(ctx)
	if err != nil {
		zap.L().Error("已发申请列表拉取失败", zap.Error(err))
		s.stores.Applies.SetSent(seq, nil)
		return
	}
	applies := make([]model.ContactApply, 0, len(list))
	for _, raw := range list {
		applies = append(applies, model.ContactApply{
			UserId:    raw.ContactId,
			Nickname:  raw.ContactName,
			Avatar:    raw.ContactAvatar,
			Telephone: raw.Telephone,
			Message:   raw.Message,
		})
	}
	s.stores.Applies.SetSent(seq, applies)
}

// fetchFriends 拉取好友列表并整体覆盖
func (s *Syncer) fetchFriends(ctx context.Context, seq uint64) {
	list, err := s.api.GetFriendList(ctx)
	if err != nil {
		zap.L().Error("好友列表拉取失败", zap.Error(err))
		s.stores.Friends.Set(seq, nil)
		return
	}
	friends := make([]model.Friend, 0, len(list))
	for _, raw := range list {
		friends = append(friends, model.Friend{
			UserId:   raw.UserId,
			Nickname: raw.UserName,
			Avatar:   raw.Avatar,
		})
	}
	s.stores.Friends.Set(seq, friends)
}
