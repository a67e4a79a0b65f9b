package api

import (
	"context"
	"io"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
)

// GetMessageList 获取某会话的全部消息（服务端顺序不保证，排序在 sync 层做）
func (a *API) GetMessageList(ctx context.Context, conversationId string) ([]respond.GetMessageListRespond, error) {
	var rsp []respond.GetMessageListRespond
	if err := a.tc.RequestJSON(ctx, http.MethodGet, "/messages/list/"+conversationId, nil, &rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// SendMessage 发送消息
func (a *API) SendMessage(ctx context.Context, req request.SendMessageRequest) (*respond.SendMessageRespond, error) {
	var rsp respond.SendMessageRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/messages/send", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// RevokeMessage 撤回消息（软标记，对所有人生效）
func (a *API) RevokeMessage(ctx context.Context, req request.MessageActionRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/messages/revoke", req, nil)
}

// DeleteMessageForSender 删除消息（软标记，仅对发送方隐藏）
func (a *API) DeleteMessageForSender(ctx context.Context, req request.MessageActionRequest) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/messages/delete", req, nil)
}

// UploadFile 上传消息附件（multipart），返回可写入消息内容的 url
func (a *API) UploadFile(ctx context.Context, fileName string, file io.Reader) (*respond.UploadRespond, error) {
	data, err := a.tc.UploadFile(ctx, "/messages/file", "file", fileName, file, nil)
	if err != nil {
		return nil, err
	}
	return decodeUpload(data)
}
