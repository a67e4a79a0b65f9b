package api

import (
	"context"
	"encoding/json"

	"kama_chat_client/internal/dto/respond"
	"kama_chat_client/internal/model"
	"kama_chat_client/pkg/errorx"
)

// BuildReceiver 把原始会话记录和查到的对端资料拼成统一的 Receiver 视图
// 纯函数：单聊传 friend，群聊传 group，另一个为 nil
func BuildReceiver(conv respond.UserSessionListRespond, friend *respond.GetFriendInfoRespond, group *respond.GetGroupInfoRespond) model.Receiver {
	switch conv.Type {
	case model.ConversationTypeSingle:
		if friend != nil {
			return model.Receiver{
				Uuid:   friend.Uuid,
				Name:   friend.Nickname,
				Avatar: friend.Avatar,
				Type:   model.ConversationTypeSingle,
			}
		}
	case model.ConversationTypeGroup:
		if group != nil {
			return model.Receiver{
				Uuid:   group.Uuid,
				Name:   group.Name,
				Avatar: group.Avatar,
				Type:   model.ConversationTypeGroup,
			}
		}
	}
	// 对端资料缺失时退化为只有 id 的占位视图
	return model.Receiver{Uuid: conv.ReceiveId, Type: conv.Type}
}

// ResolveReceiver 按会话类型二次查询对端资料并归一化
// 单聊查好友信息，群聊查群信息
func (a *API) ResolveReceiver(ctx context.Context, conv respond.UserSessionListRespond) (model.Receiver, error) {
	switch conv.Type {
	case model.ConversationTypeSingle:
		friend, err := a.GetFriendInfo(ctx, conv.ReceiveId)
		if err != nil {
			return model.Receiver{}, err
		}
		return BuildReceiver(conv, friend, nil), nil
	case model.ConversationTypeGroup:
		group, err := a.GetGroupInfo(ctx, conv.ReceiveId)
		if err != nil {
			return model.Receiver{}, err
		}
		return BuildReceiver(conv, nil, group), nil
	default:
		return model.Receiver{}, errorx.Newf(errorx.CodeInvalidParam, "未知会话类型 %q", conv.Type)
	}
}

// decodeUpload 解析上传接口的响应
func decodeUpload(data json.RawMessage) (*respond.UploadRespond, error) {
	var rsp respond.UploadRespond
	if err := json.Unmarshal(data, &rsp); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeNetwork, "响应数据解析失败")
	}
	return &rsp, nil
}
