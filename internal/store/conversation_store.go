package store

import (
	"sync"

	"kama_chat_client/internal/model"
)

// ConversationStore 会话列表
type ConversationStore struct {
	notifier
	mu      sync.Mutex
	list    []model.Conversation
	lastSeq uint64
}

// Get 返回会话列表的副本
func (s *ConversationStore) Get() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Conversation, len(s.list))
	copy(out, s.list)
	return out
}

// Set 整体替换会话列表
// seq 小于等于已应用序号时丢弃（慢响应携带的是旧数据），返回是否实际写入
func (s *ConversationStore) Set(seq uint64, list []model.Conversation) bool {
	s.mu.Lock()
	if seq <= s.lastSeq {
		s.mu.Unlock()
		return false
	}
	s.lastSeq = seq
	s.list = make([]model.Conversation, len(list))
	copy(s.list, list)
	s.mu.Unlock()
	s.notify()
	return true
}
