package store

import (
	"sync"

	"kama_chat_client/internal/model"
)

// FriendStore 好友列表
type FriendStore struct {
	notifier
	mu      sync.Mutex
	list    []model.Friend
	lastSeq uint64
}

// Get 返回好友列表副本
func (s *FriendStore) Get() []model.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Friend, len(s.list))
	copy(out, s.list)
	return out
}

// Set 整体替换好友列表，seq 过期时丢弃
func (s *FriendStore) Set(seq uint64, list []model.Friend) bool {
	s.mu.Lock()
	if seq <= s.lastSeq {
		s.mu.Unlock()
		return false
	}
	s.lastSeq = seq
	s.list = make([]model.Friend, len(list))
	copy(s.list, list)
	s.mu.Unlock()
	s.notify()
	return true
}

// ApplyStore 好友申请的两个桶：收到的和发出的
// 申请的状态由所在桶决定，实体不携带状态字段
type ApplyStore struct {
	notifier
	mu          sync.Mutex
	incoming    []model.ContactApply
	sent        []model.ContactApply
	incomingSeq uint64
	sentSeq     uint64
}

// Incoming 返回收到的申请列表副本
func (s *ApplyStore) Incoming() []model.ContactApply {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ContactApply, len(s.incoming))
	copy(out, s.incoming)
	return out
}

// Sent 返回发出的申请列表副本
func (s *ApplyStore) Sent() []model.ContactApply {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ContactApply, len(s.sent))
	copy(out, s.sent)
	return out
}

// SetIncoming 整体替换收到的申请桶
func (s *ApplyStore) SetIncoming(seq uint64, list []model.ContactApply) bool {
	s.mu.Lock()
	if seq <= s.incomingSeq {
		s.mu.Unlock()
		return false
	}
	s.incomingSeq = seq
	s.incoming = make([]model.ContactApply, len(list))
	copy(s.incoming, list)
	s.mu.Unlock()
	s.notify()
	return true
}

// SetSent 整体替换发出的申请桶
func (s *ApplyStore) SetSent(seq uint64, list []model.ContactApply) bool {
	s.mu.Lock()
	if seq <= s.sentSeq {
		s.mu.Unlock()
		return false
	}
	s.sentSeq = seq
	s.sent = make([]model.ContactApply, len(list))
	copy(s.sent, list)
	s.mu.Unlock()
	s.notify()
	return true
}
