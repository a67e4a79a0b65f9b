// Package transport 封装客户端对后端 REST 接口的所有出站调用
// 职责：
// 1. 自动附加 Bearer Token
// 2. 会话过期时做一次静默刷新并重试原请求（仅一次，无退避、无队列）
// 3. 把服务端 envelope 归一化为 errorx.CodeError
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"kama_chat_client/internal/config"
	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
	"kama_chat_client/pkg/constants"
	"kama_chat_client/pkg/errorx"

	"go.uber.org/zap"
)

// refreshPath 刷新接口路径，对该路径的请求不再触发二次刷新
const refreshPath = "/auth/refresh"

// defaultTimeout 配置未指定时的请求超时
const defaultTimeout = 15 * time.Second

// envelope 服务端统一响应结构 {code, msg, data}
// msg 可能是字符串，也可能是参数校验错误的 field->message 映射
type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// msgText 把 envelope 中的 msg 字段还原成一行可展示的文本
func (e *envelope) msgText() string {
	if len(e.Msg) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Msg, &s); err == nil {
		return s
	}
	// 参数校验错误是 map，拼成一行
	var m map[string]string
	if err := json.Unmarshal(e.Msg, &m); err == nil {
		text := ""
		for _, v := range m {
			if text != "" {
				text += "；"
			}
			text += v
		}
		return text
	}
	return string(e.Msg)
}

// Client REST 传输客户端
type Client struct {
	baseURL      string
	http         *http.Client
	tokens       *TokenStore
	onSessionEnd func() // 会话终结回调，由导航层注入（路由到登录页）
}

// New 创建传输客户端
// onSessionEnd 在 token 刷新也失败时被调用，可以为 nil
func New(cfg *config.ServerConfig, tokens *TokenStore, onSessionEnd func()) *Client {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
		onSessionEnd: onSessionEnd,
	}
}

// Tokens 返回底层 TokenStore，登录/登出流程需要直接写入
func (c *Client) Tokens() *TokenStore {
	return c.tokens
}

// Request 发起一次 REST 调用，返回 envelope 中的 data 部分
// body 不为 nil 时编码为 JSON 请求体
// 会话过期时自动做一次刷新并重试，其余错误一律向上抛出
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	return c.callWithRefresh(ctx, path, func() (json.RawMessage, error) {
		return c.do(ctx, method, path, body)
	})
}

// callWithRefresh 执行一次调用，会话过期时做一次静默刷新并重试
// JSON 请求和 multipart 上传都必须走这条路径
// 仅会话过期走刷新重试，且刷新接口本身不重试
func (c *Client) callWithRefresh(ctx context.Context, path string, call func() (json.RawMessage, error)) (json.RawMessage, error) {
	data, err := call()
	if err == nil {
		return data, nil
	}
	if !errorx.IsAuth(err) || path == refreshPath {
		return nil, err
	}
	if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
		// 刷新失败：清空两个 token 并通知导航层回到登录页
		zap.L().Warn("token refresh failed, session ended", zap.Error(refreshErr))
		if clearErr := c.tokens.Clear(); clearErr != nil {
			zap.L().Error("clear tokens failed", zap.Error(clearErr))
		}
		if c.onSessionEnd != nil {
			c.onSessionEnd()
		}
		return nil, errorx.ErrUnauthorized
	}
	// 刷新成功，用新 token 重试原调用一次
	return call()
}

// RequestJSON 调用 Request 并把 data 反序列化到 out
// out 为 nil 时仅检查调用是否成功
func (c *Client) RequestJSON(ctx context.Context, method, path string, body any, out any) error {
	data, err := c.Request(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errorx.Wrap(err, errorx.CodeNetwork, "响应数据解析失败")
	}
	return nil
}

// UploadFile 以 multipart 表单上传文件（头像、群头像、消息附件）
// fields 为随文件一起提交的普通表单字段
func (c *Client) UploadFile(ctx context.Context, path, fieldName, fileName string, file io.Reader, fields map[string]string) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, "构造上传请求失败")
	}
	// 超出服务端接收上限的文件在本地直接拦下
	n, err := io.Copy(part, io.LimitReader(file, constants.FILE_MAX_SIZE+1))
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, "读取上传文件失败")
	}
	if n > constants.FILE_MAX_SIZE {
		return nil, errorx.New(errorx.CodeInvalidParam, "文件超出大小限制")
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, errorx.Wrap(err, errorx.CodeNetwork, "构造上传请求失败")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, "构造上传请求失败")
	}

	// 留住完整请求体，token 刷新后重试时要重建请求
	payload := buf.Bytes()
	contentType := writer.FormDataContentType()
	return c.callWithRefresh(ctx, path, func() (json.RawMessage, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, errorx.Wrap(err, errorx.CodeNetwork, "构造上传请求失败")
		}
		req.Header.Set("Content-Type", contentType)
		return c.send(req)
	})
}

// do 执行单次请求（不含刷新重试）
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errorx.Wrap(err, errorx.CodeInvalidParam, "请求参数编码失败")
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, "构造请求失败")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

// send 附加 Bearer Token、发出请求并解析 envelope
func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	if token := c.tokens.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Error("http request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Code == 0 {
		// 不是标准 envelope，按 HTTP 状态码归类
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, errorx.ErrNotFound
		case resp.StatusCode == http.StatusUnauthorized:
			return nil, errorx.ErrUnauthorized
		case resp.StatusCode >= 400:
			return nil, errorx.Newf(errorx.CodeServerBusy, "服务端返回异常状态 %d", resp.StatusCode)
		default:
			return nil, errorx.Wrap(err, errorx.CodeNetwork, "响应数据解析失败")
		}
	}

	if env.Code != errorx.CodeSuccess {
		return nil, errorx.FromCode(env.Code, env.msgText())
	}
	return env.Data, nil
}

// refreshTokens 用 refresh token 换取新的 token 对
// 每个失败请求只会触发一次本调用，刷新成功后整体替换存储
func (c *Client) refreshTokens(ctx context.Context) error {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return fmt.Errorf("no refresh token stored")
	}
	data, err := c.do(ctx, http.MethodPost, refreshPath, request.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	var rsp respond.RefreshTokenRespond
	if err := json.Unmarshal(data, &rsp); err != nil {
		return err
	}
	if rsp.AccessToken == "" {
		return fmt.Errorf("refresh respond missing access token")
	}
	if err := c.tokens.Save(rsp.AccessToken, rsp.RefreshToken); err != nil {
		return err
	}
	zap.L().Info("access token refreshed")
	return nil
}
