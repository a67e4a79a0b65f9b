// Package syncer 实现"事件 -> 重新拉取 -> 整体覆盖"的同步钩子
// 每个钩子由三件事参数化：监听的事件名、触发的 REST 拉取、写入的 store setter
// 没有增量合并：收到事件后总是拉取受影响资源的完整列表并整体替换本地数据
//
// 并发约定：事件在 websocket 读协程内到达时立刻分配单调拉取序号，
// 拉取和写入在新协程中进行；store 会丢弃序号过期的写入，
// 慢响应不会覆盖更新的数据
package syncer

import (
	"context"

	"kama_chat_client/internal/api"
	"kama_chat_client/internal/realtime"
	"kama_chat_client/internal/store"
)

// Syncer 聚合全部同步钩子
type Syncer struct {
	api    *api.API
	ch     *realtime.Channel
	stores *store.Stores
	seq    *store.Sequencer
	unsubs []func()
}

// New 创建 Syncer（尚未订阅）
func New(a *api.API, ch *realtime.Channel, stores *store.Stores) *Syncer {
	return &Syncer{
		api:    a,
		ch:     ch,
		stores: stores,
		seq:    &store.Sequencer{},
	}
}

// Start 注册全部事件订阅
// 与 Stop 配对使用，避免重复注册造成重复处理
func (s *Syncer) Start() {
	s.unsubs = append(s.unsubs,
		// 会话同步
		s.ch.Subscribe(realtime.EventNotification, s.onConversationEvent),
		s.ch.Subscribe(realtime.EventNewConversation, s.onConversationEvent),
		// 消息同步
		s.ch.Subscribe(realtime.EventNewMessage, s.onNewMessage),
		// 好友申请同步
		s.ch.Subscribe(realtime.EventFriendRequest, s.onFriendRequest),
		s.ch.Subscribe(realtime.EventSentFriendRequest, s.onSentFriendRequest),
		s.ch.Subscribe(realtime.EventFriendRequestAccepted, s.onFriendRequestAccepted),
		// 在线状态同步
		s.ch.Subscribe(realtime.EventGetOnlineUsers, s.onOnlineUsers),
		// 群成员事件（仅拉取并记录，见 group_member_sync.go）
		s.ch.Subscribe(realtime.EventKickedFromGroup, s.onKickedFromGroup),
		s.ch.Subscribe(realtime.EventMemberKicked, s.onMemberEvent),
		s.ch.Subscribe(realtime.EventNewMember, s.onMemberEvent),
		s.ch.Subscribe(realtime.EventGrantAdmin, s.onMemberEvent),
		s.ch.Subscribe(realtime.EventLeaveMember, s.onMemberEvent),
	)
}

// Stop 取消全部订阅
// 不取消进行中的拉取；迟到的响应会被 store 的序号检查丢弃
func (s *Syncer) Stop() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

// Bootstrap 登录/恢复会话后的首次全量拉取
// 界面尚未产生任何事件时也需要可渲染的数据
func (s *Syncer) Bootstrap(ctx context.Context) {
	s.refreshConversations(ctx)
	s.refreshFriends(ctx)
	s.refreshIncomingApplies(ctx)
	s.refreshSentApplies(ctx)
}

// background 同步钩子内部拉取使用的上下文
// 拉取不随订阅取消而中断，过期写入由序号守卫拦截
func (s *Syncer) background() context.Context {
	return context.Background()
}
