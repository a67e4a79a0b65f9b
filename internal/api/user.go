package api

import (
	"context"
	"io"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
)

// GetUserInfo 获取用户信息
func (a *API) GetUserInfo(ctx context.Context, uuid string) (*respond.GetUserInfoRespond, error) {
	var rsp respond.GetUserInfoRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/users/info/"+uuid, nil, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// UpdateUserInfo 修改个人信息
func (a *API) UpdateUserInfo(ctx context.Context, req request.UpdateUserInfoRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/users/update", req, nil)
}

// UploadAvatar 上传头像（multipart）
func (a *API) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*respond.UploadRespond, error) {
	data, err := a.tc.UploadFile(ctx, "/users/avatar", "avatar", fileName, file, nil)
	if err != nil {
		return nil, err
	}
	return decodeUpload(data)
}
