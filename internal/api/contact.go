package api

import (
	"context"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
	"kama_chat_client/pkg/errorx"
)

// GetFriendList 获取好友列表
func (a *API) GetFriendList(ctx context.Context) ([]respond.MyUserListRespond, error) {
	var rsp []respond.MyUserListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/friends/list", nil, &rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// GetFriendInfo 获取好友（单聊对端）信息
func (a *API) GetFriendInfo(ctx context.Context, uuid string) (*respond.GetFriendInfoRespond, error) {
	var rsp respond.GetFriendInfoRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/friends/info/"+uuid, nil, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// GetNewContactList 获取收到的好友申请列表
// 404 表示"一条申请都没有"，按空列表返回而不是错误
func (a *API) GetNewContactList(ctx context.Context) ([]respond.NewContactListRespond, error) {
	var rsp []respond.NewContactListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/friends/applies", nil, &rsp); err != nil {
		if errorx.IsNotFound(err) {
			return []respond.NewContactListRespond{}, nil
		}
		return nil, err
	}
	return rsp, nil
}

// GetMyApplyList 获取我发出的好友申请列表
// 与 GetNewContactList 相同，404 按空列表处理
func (a *API) GetMyApplyList(ctx context.Context) ([]respond.MyApplyListRespond, error) {
	var rsp []respond.MyApplyListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/friends/applies/sent", nil, &rsp); err != nil {
		if errorx.IsNotFound(err) {
			return []respond.MyApplyListRespond{}, nil
		}
		return nil, err
	}
	return rsp, nil
}

// ApplyFriend 发起好友申请
func (a *API) ApplyFriend(ctx context.Context, req request.ApplyFriendRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/friends/apply", req, nil)
}

// PassContactApply 通过好友申请
func (a *API) PassContactApply(ctx context.Context, req request.HandleContactApplyRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/friends/pass", req, nil)
}

// RefuseContactApply 拒绝好友申请
func (a *API) RefuseContactApply(ctx context.Context, req request.HandleContactApplyRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/friends/refuse", req, nil)
}
