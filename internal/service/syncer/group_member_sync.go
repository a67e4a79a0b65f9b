package syncer

import (
	"encoding/json"

	"go.uber.org/zap"
)

// groupEventPayload 群成员事件携带的数据
type groupEventPayload struct {
	ConversationId string `json:"conversation_id"`
	GroupId        string `json:"group_id"`
}

// 群成员事件当前只拉取最新数据并记录日志，不写入任何 store。
// 这是沿用的既有行为：成员列表在群设置页打开时按需拉取，
// 事件触发的这次拉取结果没有消费方。
// TODO: 与服务端确认后把结果写入 GroupMembers store（setter 已具备）。

// onKickedFromGroup kickedFromGroup 事件：自己被移出群
func (s *Syncer) onKickedFromGroup(data json.RawMessage) {
	var payload groupEventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		zap.L().Error("kickedFromGroup 事件数据异常", zap.Error(err))
		return
	}
	go func() {
		info, err := s.api.GetGroupInfo(s.background(), payload.GroupId)
		if err != nil {
			zap.L().Error("群信息拉取失败", zap.String("group_id", payload.GroupId), zap.Error(err))
			return
		}
		zap.L().Info("已被移出群聊",
			zap.String("group_id", info.Uuid),
			zap.String("group_name", info.Name),
		)
	}()
}

// onMemberEvent memberKicked / newMember / grantAdmin / leaveMember 事件
func (s *Syncer) onMemberEvent(data json.RawMessage) {
	var payload groupEventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		zap.L().Error("群成员事件数据异常", zap.Error(err))
		return
	}
	go func() {
		members, err := s.api.GetGroupMemberList(s.background(), payload.ConversationId)
		if err != nil {
			zap.L().Error("群成员列表拉取失败",
				zap.String("conversation_id", payload.ConversationId),
				zap.Error(err),
			)
			return
		}
		zap.L().Info("群成员发生变更",
			zap.String("conversation_id", payload.ConversationId),
			zap.Int("member_cnt", len(members)),
		)
	}()
}
