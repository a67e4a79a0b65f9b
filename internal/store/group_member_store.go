package store

import (
	"sync"

	"kama_chat_client/internal/model"
)

// GroupMemberStore 按会话分片的群成员集合
// 每次成员变更事件后整体替换，不做增量修补
type GroupMemberStore struct {
	notifier
	mu      sync.Mutex
	byConv  map[string][]model.GroupMember
	lastSeq map[string]uint64
}

// NewGroupMemberStore 构造空的群成员 store
func NewGroupMemberStore() *GroupMemberStore {
	return &GroupMemberStore{
		byConv:  make(map[string][]model.GroupMember),
		lastSeq: make(map[string]uint64),
	}
}

// Get 返回指定会话的成员列表副本
func (s *GroupMemberStore) Get(conversationId string) []model.GroupMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.byConv[conversationId]
	out := make([]model.GroupMember, len(src))
	copy(out, src)
	return out
}

// Set 整体替换指定会话的成员集合，seq 过期时丢弃
func (s *GroupMemberStore) Set(conversationId string, seq uint64, list []model.GroupMember) bool {
	s.mu.Lock()
	if seq <= s.lastSeq[conversationId] {
		s.mu.Unlock()
		return false
	}
	s.lastSeq[conversationId] = seq
	copied := make([]model.GroupMember, len(list))
	copy(copied, list)
	s.byConv[conversationId] = copied
	s.mu.Unlock()
	s.notify()
	return true
}
