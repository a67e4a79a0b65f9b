package api

import (
	"context"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
)

// GetSessionList 获取会话列表（原始记录，对端身份未解析）
func (a *API) GetSessionList(ctx context.Context) ([]respond.UserSessionListRespond, error) {
	var rsp []respond.UserSessionListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/conversations/list", nil, &rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// OpenSession 打开（或创建）会话
func (a *API) OpenSession(ctx context.Context, req request.OpenSessionRequest) (*respond.OpenSessionRespond, error) {
	var rsp respond.OpenSessionRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/conversations/open", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// DeleteSession 删除会话（软删除）
func (a *API) DeleteSession(ctx context.Context, req request.DeleteSessionRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/conversations/delete", req, nil)
}
