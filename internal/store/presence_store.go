package store

import "sync"

// PresenceStore 在线用户 id 集合
// 每次在线广播整体替换，payload 原样采用，不需要拉取序号
type PresenceStore struct {
	notifier
	mu     sync.Mutex
	online map[string]struct{}
}

// NewPresenceStore 构造空的在线集合
func NewPresenceStore() *PresenceStore {
	return &PresenceStore{online: make(map[string]struct{})}
}

// IsOnline 判断用户是否在线
func (s *PresenceStore) IsOnline(userId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.online[userId]
	return ok
}

// All 返回在线用户 id 列表
func (s *PresenceStore) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.online))
	for id := range s.online {
		out = append(out, id)
	}
	return out
}

// Replace 整体替换在线集合
func (s *PresenceStore) Replace(userIds []string) {
	next := make(map[string]struct{}, len(userIds))
	for _, id := range userIds {
		next[id] = struct{}{}
	}
	s.mu.Lock()
	s.online = next
	s.mu.Unlock()
	s.notify()
}
