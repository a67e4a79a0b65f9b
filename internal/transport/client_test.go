package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"kama_chat_client/internal/config"
	"kama_chat_client/pkg/constants"
	"kama_chat_client/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, onSessionEnd func()) (*Client, *TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens, err := NewTokenStore(filepath.Join(t.TempDir(), "tokens.json"))
	require.NoError(t, err)
	cfg := &config.ServerConfig{BaseURL: srv.URL}
	return New(cfg, tokens, onSessionEnd), tokens
}

func TestRequestAttachesBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotAuth string
	r.GET("/users/info/u1", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{"uuid": "u1"}})
	})

	client, tokens := newTestClient(t, r, nil)
	require.NoError(t, tokens.Save("my-access", "my-refresh"))

	data, err := client.Request(context.Background(), http.MethodGet, "/users/info/u1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-access", gotAuth)
	assert.JSONEq(t, `{"uuid":"u1"}`, string(data))
}

func TestRequestValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users/login", func(c *gin.Context) {
		// 参数校验失败时 msg 是 field->message 映射
		c.JSON(http.StatusOK, gin.H{"code": 1001, "msg": gin.H{"telephone": "手机号格式不正确"}})
	})

	client, _ := newTestClient(t, r, nil)
	_, err := client.Request(context.Background(), http.MethodPost, "/users/login", map[string]string{})
	require.Error(t, err)
	assert.True(t, errorx.IsValidation(err))
	assert.Equal(t, "手机号格式不正确", errorx.GetMsg(err))
}

func TestRequestRaw404MapsToNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler(), nil)
	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/applies/u1", nil)
	assert.True(t, errorx.IsNotFound(err))
}

func TestRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	tokens, err := NewTokenStore(filepath.Join(t.TempDir(), "tokens.json"))
	require.NoError(t, err)
	client := New(&config.ServerConfig{BaseURL: srv.URL}, tokens, nil)
	srv.Close()

	_, err = client.Request(context.Background(), http.MethodGet, "/users/info/u1", nil)
	assert.True(t, errorx.IsNetwork(err))
}

func TestRequestRefreshAndRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var infoCalls, refreshCalls atomic.Int32
	r := gin.New()
	r.GET("/users/info/u1", func(c *gin.Context) {
		infoCalls.Add(1)
		if c.GetHeader("Authorization") != "Bearer new-access" {
			c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "会话已过期"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{"uuid": "u1"}})
	})
	r.POST("/auth/refresh", func(c *gin.Context) {
		refreshCalls.Add(1)
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		assert.Equal(t, "old-refresh", body.RefreshToken)
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{
			"access_token":  "new-access",
			"refresh_token": "new-refresh",
		}})
	})

	client, tokens := newTestClient(t, r, nil)
	require.NoError(t, tokens.Save("expired-access", "old-refresh"))

	data, err := client.Request(context.Background(), http.MethodGet, "/users/info/u1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"u1"}`, string(data))

	// 刷新恰好一次，原请求恰好重试一次
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), infoCalls.Load())
	// 新 token 对整体替换旧值
	assert.Equal(t, "new-access", tokens.Access())
	assert.Equal(t, "new-refresh", tokens.Refresh())
}

func TestRequestRefreshFailureEndsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var refreshCalls atomic.Int32
	r := gin.New()
	r.GET("/users/info/u1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "会话已过期"})
	})
	r.POST("/auth/refresh", func(c *gin.Context) {
		refreshCalls.Add(1)
		c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "refresh token 已失效"})
	})

	sessionEnded := false
	client, tokens := newTestClient(t, r, func() { sessionEnded = true })
	require.NoError(t, tokens.Save("expired-access", "dead-refresh"))

	_, err := client.Request(context.Background(), http.MethodGet, "/users/info/u1", nil)
	require.Error(t, err)
	assert.True(t, errorx.IsAuth(err))

	// 刷新失败后两个 token 一并清空，并回调导航层
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Empty(t, tokens.Access())
	assert.Empty(t, tokens.Refresh())
	assert.True(t, sessionEnded)
}

func TestRefreshPathItselfNeverRetries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls atomic.Int32
	r := gin.New()
	r.POST("/auth/refresh", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "未授权"})
	})

	client, tokens := newTestClient(t, r, nil)
	require.NoError(t, tokens.Save("a", "r"))

	_, err := client.Request(context.Background(), http.MethodPost, refreshPath, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUploadFileRejectsOversize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls atomic.Int32
	r := gin.New()
	r.POST("/users/avatar", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{"url": "/static/a.png"}})
	})

	client, _ := newTestClient(t, r, nil)
	big := strings.NewReader(strings.Repeat("x", constants.FILE_MAX_SIZE+1))
	_, err := client.UploadFile(context.Background(), "/users/avatar", "avatar", "a.png", big, nil)
	require.Error(t, err)
	assert.True(t, errorx.IsValidation(err))
	// 超限文件不发出请求
	assert.Equal(t, int32(0), calls.Load())

	small := strings.NewReader("tiny")
	data, err := client.UploadFile(context.Background(), "/users/avatar", "avatar", "a.png", small, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"/static/a.png"}`, string(data))
}

func TestUploadFileRefreshAndRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var uploadCalls, refreshCalls atomic.Int32
	r := gin.New()
	r.POST("/users/avatar", func(c *gin.Context) {
		uploadCalls.Add(1)
		if c.GetHeader("Authorization") != "Bearer new-access" {
			c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "会话已过期"})
			return
		}
		file, err := c.FormFile("avatar")
		require.NoError(t, err)
		assert.Equal(t, "a.png", file.Filename)
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{"url": "/static/a.png"}})
	})
	r.POST("/auth/refresh", func(c *gin.Context) {
		refreshCalls.Add(1)
		c.JSON(http.StatusOK, gin.H{"code": 1000, "msg": "success", "data": gin.H{
			"access_token":  "new-access",
			"refresh_token": "new-refresh",
		}})
	})

	client, tokens := newTestClient(t, r, nil)
	require.NoError(t, tokens.Save("expired-access", "old-refresh"))

	data, err := client.UploadFile(context.Background(), "/users/avatar", "avatar", "a.png",
		strings.NewReader("png-bytes"), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"/static/a.png"}`, string(data))

	// 上传与 JSON 请求共享同一条刷新重试路径：刷新一次，重试一次
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), uploadCalls.Load())
	assert.Equal(t, "new-access", tokens.Access())
}

func TestUploadFileRefreshFailureEndsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users/avatar", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "会话已过期"})
	})
	r.POST("/auth/refresh", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 1006, "msg": "refresh token 已失效"})
	})

	sessionEnded := false
	client, tokens := newTestClient(t, r, func() { sessionEnded = true })
	require.NoError(t, tokens.Save("expired-access", "dead-refresh"))

	_, err := client.UploadFile(context.Background(), "/users/avatar", "avatar", "a.png",
		strings.NewReader("png-bytes"), nil)
	require.Error(t, err)
	assert.True(t, errorx.IsAuth(err))
	assert.Empty(t, tokens.Access())
	assert.True(t, sessionEnded)
}
