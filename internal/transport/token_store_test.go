package transport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tokens.json")

	s, err := NewTokenStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.Access())
	assert.Empty(t, s.Refresh())

	require.NoError(t, s.Save("access-1", "refresh-1"))

	// 重新加载，模拟进程重启后恢复会话
	s2, err := NewTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "access-1", s2.Access())
	assert.Equal(t, "refresh-1", s2.Refresh())
}

func TestTokenStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	s, err := NewTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("a", "r"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Access())
	assert.Empty(t, s.Refresh())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// 重复清空不应报错
	require.NoError(t, s.Clear())
}

func TestTokenStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// 损坏文件按未登录处理，不阻塞启动
	s, err := NewTokenStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.Access())
}
