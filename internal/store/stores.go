// Package store 提供客户端的领域数据容器
// 设计约定：
//  1. 每个 store 独占自己的数据切片，跨 store 不共享引用，
//     派生信息（如"某用户是否在线"）在使用处按 id 查询，不做跨 store 计算
//  2. setter 整体替换数据，没有增量合并
//  3. 列表类 setter 携带单调递增的拉取序号（见 Sequencer），
//     慢响应携带的旧序号会被丢弃，避免旧数据覆盖新数据
//  4. Stores 由启动流程显式构造并注入使用方，不做包级单例
package store

import "sync/atomic"

// Stores 聚合全部领域 store，整体注入
type Stores struct {
	SessionUser   *SessionUserStore
	ActiveChat    *ActiveChatStore
	Conversations *ConversationStore
	Messages      *MessageStore
	Friends       *FriendStore
	Applies       *ApplyStore
	GroupMembers  *GroupMemberStore
	Presence      *PresenceStore
}

// New 构造一套空的 store 集合
func New() *Stores {
	return &Stores{
		SessionUser:   &SessionUserStore{},
		ActiveChat:    &ActiveChatStore{},
		Conversations: &ConversationStore{},
		Messages:      NewMessageStore(),
		Friends:       &FriendStore{},
		Applies:       &ApplyStore{},
		GroupMembers:  NewGroupMemberStore(),
		Presence:      NewPresenceStore(),
	}
}

// Sequencer 为每次"拉取并写入"分配单调递增序号
type Sequencer struct {
	n atomic.Uint64
}

// Next 返回下一个序号，从 1 开始
func (s *Sequencer) Next() uint64 {
	return s.n.Add(1)
}
