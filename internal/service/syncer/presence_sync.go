package syncer

import (
	"encoding/json"

	"go.uber.org/zap"
)

// onOnlineUsers getOnlineUsers 事件
// 在线用户 id 列表随事件直接下发，原样整体替换在线集合，不做二次拉取
func (s *Syncer) onOnlineUsers(data json.RawMessage) {
	var userIds []string
	if err := json.Unmarshal(data, &userIds); err != nil {
		zap.L().Error("getOnlineUsers 事件数据异常", zap.Error(err))
		return
	}
	s.stores.Presence.Replace(userIds)
}
