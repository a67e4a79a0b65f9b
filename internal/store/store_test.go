package store

import (
	"testing"

	"kama_chat_client/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestConversationStoreSequenceGuard(t *testing.T) {
	s := &ConversationStore{}
	var seq Sequencer
	seq1 := seq.Next()
	seq2 := seq.Next()

	// 新序号的响应先到
	assert.True(t, s.Set(seq2, []model.Conversation{{Uuid: "G_new"}}))
	// 旧序号的慢响应后到，必须被丢弃
	assert.False(t, s.Set(seq1, []model.Conversation{{Uuid: "G_stale"}}))

	got := s.Get()
	assert.Len(t, got, 1)
	assert.Equal(t, "G_new", got[0].Uuid)
}

func TestConversationStoreGetReturnsCopy(t *testing.T) {
	s := &ConversationStore{}
	s.Set(1, []model.Conversation{{Uuid: "G_1", Type: model.ConversationTypeGroup}})

	got := s.Get()
	got[0].Uuid = "tampered"

	assert.Equal(t, "G_1", s.Get()[0].Uuid)
}

func TestMessageStorePerConversationIsolation(t *testing.T) {
	s := NewMessageStore()
	assert.True(t, s.Set("conv-a", 1, []model.Message{{Uuid: "m1"}}))
	assert.True(t, s.Set("conv-b", 2, []model.Message{{Uuid: "m2"}, {Uuid: "m3"}}))

	// 替换 conv-a 不影响 conv-b
	assert.True(t, s.Set("conv-a", 3, []model.Message{{Uuid: "m4"}}))
	assert.Len(t, s.Get("conv-a"), 1)
	assert.Equal(t, "m4", s.Get("conv-a")[0].Uuid)
	assert.Len(t, s.Get("conv-b"), 2)

	// 每个会话的序号独立：conv-b 的旧序号仍被拒绝
	assert.False(t, s.Set("conv-b", 2, nil))
	assert.Len(t, s.Get("conv-b"), 2)

	// 未知会话返回空切片
	assert.Empty(t, s.Get("conv-unknown"))
}

func TestApplyStoreBuckets(t *testing.T) {
	s := &ApplyStore{}
	assert.True(t, s.SetIncoming(1, []model.ContactApply{{UserId: "u-in"}}))
	assert.True(t, s.SetSent(1, []model.ContactApply{{UserId: "u-out-1"}, {UserId: "u-out-2"}}))

	// 两个桶序号独立
	assert.False(t, s.SetIncoming(1, nil))
	assert.True(t, s.SetSent(2, []model.ContactApply{{UserId: "u-out-1"}}))

	assert.Len(t, s.Incoming(), 1)
	assert.Len(t, s.Sent(), 1)
}

func TestSessionUserStoreCopies(t *testing.T) {
	s := &SessionUserStore{}
	assert.Nil(t, s.Get())

	s.Set(&model.UserInfo{Uuid: "U_1", Nickname: "张三"})
	got := s.Get()
	got.Nickname = "tampered"
	assert.Equal(t, "张三", s.Get().Nickname)

	s.Clear()
	assert.Nil(t, s.Get())
}

func TestPresenceStoreReplace(t *testing.T) {
	s := NewPresenceStore()
	s.Replace([]string{"u1", "u2"})
	assert.True(t, s.IsOnline("u1"))
	assert.True(t, s.IsOnline("u2"))

	// 整体替换：不在新列表中的用户视为下线
	s.Replace([]string{"u2", "u3"})
	assert.False(t, s.IsOnline("u1"))
	assert.True(t, s.IsOnline("u3"))
	assert.Len(t, s.All(), 2)
}

func TestOnChangeFiresAfterWrite(t *testing.T) {
	s := &FriendStore{}
	var fired int
	s.OnChange(func() { fired++ })

	s.Set(1, []model.Friend{{UserId: "u1"}})
	assert.Equal(t, 1, fired)

	// 被丢弃的写入不触发回调
	s.Set(1, nil)
	assert.Equal(t, 1, fired)
}

func TestSequencerMonotonic(t *testing.T) {
	var seq Sequencer
	a, b, c := seq.Next(), seq.Next(), seq.Next()
	assert.Equal(t, uint64(1), a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}
