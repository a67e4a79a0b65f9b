package store

import "sync"

// ActiveChatStore 当前选中的会话
type ActiveChatStore struct {
	notifier
	mu sync.Mutex
	id string
}

// Get 返回当前选中的会话 id，未选中时为空串
func (s *ActiveChatStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Set 切换当前会话
func (s *ActiveChatStore) Set(id string) {
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
	s.notify()
}
