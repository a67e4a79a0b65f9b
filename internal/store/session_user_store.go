package store

import (
	"sync"

	"kama_chat_client/internal/model"
)

// SessionUserStore 当前登录用户
type SessionUserStore struct {
	notifier
	mu   sync.Mutex
	user *model.UserInfo
}

// Get 返回当前用户的副本，未登录时返回 nil
func (s *SessionUserStore) Get() *model.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Set 设置当前用户
func (s *SessionUserStore) Set(u *model.UserInfo) {
	s.mu.Lock()
	if u == nil {
		s.user = nil
	} else {
		copied := *u
		s.user = &copied
	}
	s.mu.Unlock()
	s.notify()
}

// Clear 登出时清空
func (s *SessionUserStore) Clear() {
	s.Set(nil)
}
