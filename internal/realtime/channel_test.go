package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"kama_chat_client/internal/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer 测试用的 websocket 服务端
// 记录连接时的 uuid 查询参数，收集客户端上行帧，并支持向客户端推送事件
type fakeServer struct {
	*httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conn     *websocket.Conn
	gotUuid  string
	received chan Event
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{received: make(chan Event, 16)}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := fs.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fs.mu.Lock()
		fs.conn = conn
		fs.gotUuid = r.URL.Query().Get("uuid")
		fs.mu.Unlock()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev Event
			if json.Unmarshal(data, &ev) == nil {
				fs.received <- ev
			}
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) wsURL() string {
	return "ws" + strings.TrimPrefix(fs.URL, "http")
}

func (fs *fakeServer) push(t *testing.T, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	frame, err := json.Marshal(Event{Event: event, Data: data})
	require.NoError(t, err)
	// 等待服务端握手处理完成
	var conn *websocket.Conn
	require.Eventually(t, func() bool {
		fs.mu.Lock()
		conn = fs.conn
		fs.mu.Unlock()
		return conn != nil
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

func newTestChannel(wsURL string) *Channel {
	return NewChannel(&config.RealtimeConfig{
		MaxRetries: 2,
		RetryDelay: 20 * time.Millisecond,
	}, wsURL)
}

func TestConnectRequiresUserId(t *testing.T) {
	ch := newTestChannel("ws://127.0.0.1:0/ws")
	assert.Error(t, ch.Connect(""))
	assert.Equal(t, StateDisconnected, ch.State())
}

func TestConnectSendsUuidQueryParam(t *testing.T) {
	fs := newFakeServer(t)
	ch := newTestChannel(fs.wsURL())
	require.NoError(t, ch.Connect("U_123"))
	defer ch.Close()

	assert.Equal(t, StateConnected, ch.State())
	assert.Eventually(t, func() bool {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return fs.gotUuid == "U_123"
	}, time.Second, 10*time.Millisecond)

	// 已连接状态下重复 Connect 被拒绝
	assert.Error(t, ch.Connect("U_123"))
}

func TestSubscribeAndDispatch(t *testing.T) {
	fs := newFakeServer(t)
	ch := newTestChannel(fs.wsURL())

	got := make(chan string, 4)
	ch.Subscribe(EventNewMessage, func(data json.RawMessage) {
		var payload struct {
			ConversationId string `json:"conversation_id"`
		}
		_ = json.Unmarshal(data, &payload)
		got <- payload.ConversationId
	})
	unsub := ch.Subscribe(EventNewMessage, func(json.RawMessage) {
		got <- "second"
	})

	require.NoError(t, ch.Connect("U_123"))
	defer ch.Close()

	fs.push(t, EventNewMessage, map[string]string{"conversation_id": "conv-1"})

	// 同一事件的多个订阅者都被调用
	results := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case v := <-got:
			results[v] = true
		case <-time.After(time.Second):
			t.Fatal("event not dispatched")
		}
	}
	assert.True(t, results["conv-1"])
	assert.True(t, results["second"])

	// 取消订阅后不再收到
	unsub()
	fs.push(t, EventNewMessage, map[string]string{"conversation_id": "conv-2"})
	select {
	case v := <-got:
		assert.Equal(t, "conv-2", v)
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber should still receive")
	}
	select {
	case v := <-got:
		t.Fatalf("unsubscribed handler still called: %v", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEmitReachesServer(t *testing.T) {
	fs := newFakeServer(t)
	ch := newTestChannel(fs.wsURL())
	require.NoError(t, ch.Connect("U_123"))
	defer ch.Close()

	require.NoError(t, ch.Emit(EmitJoinRoom, map[string]string{"conversation_id": "conv-1"}))

	select {
	case ev := <-fs.received:
		assert.Equal(t, EmitJoinRoom, ev.Event)
		assert.JSONEq(t, `{"conversation_id":"conv-1"}`, string(ev.Data))
	case <-time.After(time.Second):
		t.Fatal("server did not receive emitted event")
	}
}

func TestEmitWhenDisconnected(t *testing.T) {
	ch := newTestChannel("ws://127.0.0.1:0/ws")
	assert.Error(t, ch.Emit(EmitSendMessage, map[string]string{}))
}

func TestCloseStopsDispatch(t *testing.T) {
	fs := newFakeServer(t)
	ch := newTestChannel(fs.wsURL())

	got := make(chan struct{}, 4)
	ch.Subscribe(EventNotification, func(json.RawMessage) { got <- struct{}{} })

	require.NoError(t, ch.Connect("U_123"))
	fs.push(t, EventNotification, map[string]string{})
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("event not dispatched before close")
	}

	ch.Close()
	assert.Equal(t, StateDisconnected, ch.State())
	assert.Error(t, ch.Emit(EmitSendMessage, map[string]string{}))

	// 关闭后即使服务端仍在推送也不再分发
	fs.mu.Lock()
	conn := fs.conn
	fs.mu.Unlock()
	if conn != nil {
		data, _ := json.Marshal(Event{Event: EventNotification})
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
	select {
	case <-got:
		t.Fatal("dispatch after close")
	case <-time.After(200 * time.Millisecond):
	}

	// 重复关闭是安全的
	ch.Close()
}

func TestDialRetriesAreBounded(t *testing.T) {
	// 指向一个没有服务端监听的地址
	srv := httptest.NewServer(http.NotFoundHandler())
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	ch := newTestChannel(wsURL)
	start := time.Now()
	err := ch.Connect("U_123")
	require.Error(t, err)
	assert.Equal(t, StateDisconnected, ch.State())
	// 2 次尝试、每次 20ms 延迟，远小于无界重试
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWriteLoopSurvivesReconnectWindow(t *testing.T) {
	fs := newFakeServer(t)
	ch := newTestChannel(fs.wsURL())
	require.NoError(t, ch.Connect("U_123"))
	defer ch.Close()

	// 进入重连窗口：连接暂时不可用，发送缓冲里还可能有帧
	ch.mu.Lock()
	conn := ch.conn
	ch.conn = nil
	ch.mu.Unlock()

	require.NoError(t, ch.Emit(EmitSendMessage, map[string]string{"conversation_id": "conv-1"}))
	// 等写协程消费这一帧（被丢弃）
	time.Sleep(50 * time.Millisecond)

	// 连接重建完成
	ch.mu.Lock()
	ch.conn = conn
	ch.mu.Unlock()

	require.NoError(t, ch.Emit(EmitJoinRoom, map[string]string{"conversation_id": "conv-2"}))
	select {
	case ev := <-fs.received:
		assert.Equal(t, EmitJoinRoom, ev.Event)
	case <-time.After(time.Second):
		t.Fatal("write goroutine did not survive the reconnect window")
	}
}
