// Package realtime 维护客户端与服务端之间唯一的一条长连接
// 职责：
// 1. 连接生命周期：Disconnected -> Connecting -> Connected -> Disconnected
// 2. 按事件名订阅/取消订阅，按事件名发送
// 3. 断线后有界次数的自动重连（固定延迟），登出后彻底关闭
// 连接错误只记日志，不向界面层暴露
package realtime

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"kama_chat_client/internal/config"
	"kama_chat_client/pkg/constants"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// State 连接状态
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// Event 双向的命名事件帧
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Handler 事件处理函数，data 为事件携带的原始 JSON
type Handler func(data json.RawMessage)

// Channel 实时通道
type Channel struct {
	wsURL      string
	maxRetries int
	retryDelay time.Duration

	mu      sync.Mutex
	conn    *websocket.Conn
	state   State
	userId  string
	subs    map[string]map[int]Handler
	nextSub int
	sendTo  chan Event // 给服务端
	done    chan struct{}
	closed  bool
}

// NewChannel 创建实时通道（尚未连接）
func NewChannel(cfg *config.RealtimeConfig, wsURL string) *Channel {
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = constants.RECONNECT_MAX_ATTEMPTS
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = constants.RECONNECT_DELAY_SECONDS * time.Second
	}
	return &Channel{
		wsURL:      wsURL,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		subs:       make(map[string]map[int]Handler),
	}
}

// State 返回当前连接状态
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect 建立连接
// 只有已知登录用户 id 时才允许连接，id 作为查询参数让服务端把 socket 关联到用户
func (c *Channel) Connect(userId string) error {
	if userId == "" {
		return fmt.Errorf("realtime: connect requires a session user id")
	}

	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return fmt.Errorf("realtime: already connected or connecting")
	}
	c.state = StateConnecting
	c.userId = userId
	c.closed = false
	c.sendTo = make(chan Event, constants.CHANNEL_SIZE)
	c.done = make(chan struct{})
	c.mu.Unlock()

	conn, err := c.dial()
	if err != nil {
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	go c.readLoop()
	go c.writeLoop()
	zap.L().Info("ws连接成功", zap.String("user_id", userId))
	return nil
}

// dial 带重试地建立 websocket 连接
// 固定延迟、有界次数，失败只记日志
func (c *Channel) dial() (*websocket.Conn, error) {
	u, err := url.Parse(c.wsURL)
	if err != nil {
		return nil, fmt.Errorf("realtime: bad ws url: %w", err)
	}
	q := u.Query()
	q.Set("uuid", c.userId)
	u.RawQuery = q.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		zap.L().Error("ws dial failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-c.done:
			return nil, fmt.Errorf("realtime: channel closed during dial")
		case <-time.After(c.retryDelay):
		}
	}
	return nil, fmt.Errorf("realtime: dial failed after %d attempts: %w", c.maxRetries, lastErr)
}

// Subscribe 订阅命名事件，返回取消订阅函数
// 同一事件可以有多个订阅者，按注册顺序依次调用
func (c *Channel) Subscribe(event string, handler Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs[event] == nil {
		c.subs[event] = make(map[int]Handler)
	}
	id := c.nextSub
	c.nextSub++
	c.subs[event][id] = handler
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs[event], id)
	}
}

// Emit 向服务端发送命名事件
// 通道未连接或发送缓冲已满时返回错误，不阻塞调用方
func (c *Channel) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if c.state != StateConnected {
		c.mu.Unlock()
		return fmt.Errorf("realtime: not connected")
	}
	sendTo := c.sendTo
	c.mu.Unlock()

	select {
	case sendTo <- Event{Event: event, Data: data}:
		return nil
	default:
		return fmt.Errorf("realtime: send buffer full")
	}
}

// Close 关闭通道
// 登出或应用退出时调用；关闭后所有订阅随之失效，不再有事件被分发
func (c *Channel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.state = StateDisconnected
	c.subs = make(map[string]map[int]Handler)
	conn := c.conn
	c.conn = nil
	if c.done != nil {
		close(c.done)
	}
	c.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
	zap.L().Info("ws连接已关闭")
}

// readLoop 从 websocket 读取事件帧并分发给订阅者
// 读出错时尝试有界重连，重连失败则停在 Disconnected
func (c *Channel) readLoop() {
	zap.L().Info("ws read goroutine start")
	for {
		c.mu.Lock()
		conn := c.conn
		closed := c.closed
		c.mu.Unlock()
		if closed || conn == nil {
			return
		}

		_, jsonMessage, err := conn.ReadMessage()
		if err != nil {
			if c.isClosed() {
				return
			}
			zap.L().Error(err.Error())
			if !c.reconnect() {
				return
			}
			continue
		}

		var ev Event
		if err := json.Unmarshal(jsonMessage, &ev); err != nil {
			zap.L().Error("ws 事件解析失败", zap.Error(err))
			continue
		}
		c.dispatch(ev)
	}
}

// writeLoop 从发送缓冲读取事件帧并写入 websocket
func (c *Channel) writeLoop() {
	zap.L().Info("ws write goroutine start")
	c.mu.Lock()
	sendTo := c.sendTo
	done := c.done
	c.mu.Unlock()
	for {
		select {
		case <-done:
			return
		case ev := <-sendTo:
			data, err := json.Marshal(ev)
			if err != nil {
				zap.L().Error(err.Error())
				continue
			}
			c.mu.Lock()
			conn := c.conn
			c.mu.Unlock()
			if conn == nil {
				// 重连窗口期间连接暂时不可用：丢弃这一帧，写协程继续存活
				zap.L().Warn("ws连接重建中，发送帧被丢弃", zap.String("event", ev.Event))
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				zap.L().Error(err.Error())
			}
		}
	}
}

// dispatch 把事件帧交给对应的订阅者
// 在读协程内串行调用，保证同名事件按到达顺序处理
func (c *Channel) dispatch(ev Event) {
	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.subs[ev.Event]))
	for _, h := range c.subs[ev.Event] {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()
	for _, h := range handlers {
		h(ev.Data)
	}
}

// reconnect 断线后重建连接，返回是否成功
func (c *Channel) reconnect() bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.state = StateConnecting
	old := c.conn
	c.conn = nil
	c.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}

	conn, err := c.dial()
	if err != nil {
		zap.L().Error("ws reconnect failed", zap.Error(err))
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = conn.Close()
		return false
	}
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()
	zap.L().Info("ws重连成功")
	return true
}

// isClosed 判断通道是否已被主动关闭
func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
