package realtime

// 服务端推送的事件名
const (
	EventNotification          = "notification"          // 会话列表需要刷新
	EventNewConversation       = "newConversation"       // 新会话建立
	EventNewMessage            = "newMessage"            // 新消息
	EventFriendRequest         = "friendRequest"         // 收到好友申请
	EventSentFriendRequest     = "sentFriendRequest"     // 我发出的申请有更新
	EventFriendRequestAccepted = "friendRequestAccepted" // 申请被通过
	EventGetOnlineUsers        = "getOnlineUsers"        // 在线用户广播
	EventKickedFromGroup       = "kickedFromGroup"       // 自己被移出群
	EventMemberKicked          = "memberKicked"          // 有成员被移出群
	EventNewMember             = "newMember"             // 新成员入群
	EventGrantAdmin            = "grantAdmin"            // 授予管理员
	EventLeaveMember           = "leaveMember"           // 成员退群
)

// 客户端发出的事件名
const (
	EmitJoinRoom    = "joinRoom"    // 进入会话房间
	EmitLeaveRoom   = "leaveRoom"   // 离开会话房间
	EmitSendMessage = "sendMessage" // 发送消息通知
)
