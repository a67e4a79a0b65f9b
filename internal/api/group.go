package api

import (
	"context"
	"io"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
)

// CreateGroup 创建群聊
func (a *API) CreateGroup(ctx context.Context, req request.CreateGroupRequest) (*respond.CreateGroupRespond, error) {
	var rsp respond.CreateGroupRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/groups/create", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// GetGroupInfo 获取群信息
func (a *API) GetGroupInfo(ctx context.Context, uuid string) (*respond.GetGroupInfoRespond, error) {
	var rsp respond.GetGroupInfoRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/groups/info/"+uuid, nil, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// GetGroupMemberList 获取某会话的群成员列表
func (a *API) GetGroupMemberList(ctx context.Context, conversationId string) ([]respond.GetGroupMemberListRespond, error) {
	var rsp []respond.GetGroupMemberListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/groups/members/"+conversationId, nil, &rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// LeaveGroup 退出群聊
func (a *API) LeaveGroup(ctx context.Context, req request.LeaveGroupRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/groups/leave", req, nil)
}

// RemoveGroupMembers 移除群成员（管理员操作）
func (a *API) RemoveGroupMembers(ctx context.Context, req request.RemoveGroupMembersRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/groups/remove-members", req, nil)
}

// GrantAdmin 授予管理员
func (a *API) GrantAdmin(ctx context.Context, req request.GrantAdminRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/groups/grant-admin", req, nil)
}

// UploadGroupAvatar 上传群头像（multipart）
func (a *API) UploadGroupAvatar(ctx context.Context, groupId, fileName string, file io.Reader) (*respond.UploadRespond, error) {
	data, err := a.tc.UploadFile(ctx, "/groups/avatar", "avatar", fileName, file, map[string]string{"group_id": groupId})
	if err != nil {
		return nil, err
	}
	return decodeUpload(data)
}
