package store

import (
	"sync"

	"kama_chat_client/internal/model"
)

// MessageStore 按会话分片的消息列表
// 每个会话的切片独立替换，互不影响
type MessageStore struct {
	notifier
	mu      sync.Mutex
	byConv  map[string][]model.Message
	lastSeq map[string]uint64 // 每个会话单独记录已应用序号
}

// NewMessageStore 构造空的消息 store
func NewMessageStore() *MessageStore {
	return &MessageStore{
		byConv:  make(map[string][]model.Message),
		lastSeq: make(map[string]uint64),
	}
}

// Get 返回指定会话的消息列表副本
func (s *MessageStore) Get(conversationId string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.byConv[conversationId]
	out := make([]model.Message, len(src))
	copy(out, src)
	return out
}

// Set 整体替换指定会话的消息列表，其他会话不受影响
// seq 过期时丢弃，返回是否实际写入
func (s *MessageStore) Set(conversationId string, seq uint64, list []model.Message) bool {
	s.mu.Lock()
	if seq <= s.lastSeq[conversationId] {
		s.mu.Unlock()
		return false
	}
	s.lastSeq[conversationId] = seq
	copied := make([]model.Message, len(list))
	copy(copied, list)
	s.byConv[conversationId] = copied
	s.mu.Unlock()
	s.notify()
	return true
}
