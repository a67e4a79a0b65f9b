package transport

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// tokenPair 落盘格式
type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore 本地持久化的 token 对
// 客户端唯一的持久化状态就是这两个字符串，登出或刷新失败时一起清空
type TokenStore struct {
	mu      sync.Mutex
	path    string
	access  string
	refresh string
}

// NewTokenStore 创建 TokenStore 并加载已有的 token 文件
// 文件不存在不算错误，视为未登录状态
func NewTokenStore(path string) (*TokenStore, error) {
	s := &TokenStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	var pair tokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		// 文件损坏按未登录处理，不让一个坏文件卡死启动流程
		return s, nil
	}
	s.access = pair.AccessToken
	s.refresh = pair.RefreshToken
	return s, nil
}

// Access 返回当前 access token，未登录时为空串
func (s *TokenStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// Refresh 返回当前 refresh token
func (s *TokenStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// Save 整体替换 token 对并落盘
// 先写临时文件再 rename，避免写一半时进程退出留下损坏文件
func (s *TokenStore) Save(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh

	data, err := json.Marshal(tokenPair{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear 清空内存中的 token 并删除本地文件
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
