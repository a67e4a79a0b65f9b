package api

import (
	"context"
	"net/http"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
)

// Login 密码登录
func (a *API) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	var rsp respond.LoginRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/users/login", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// SmsLogin 短信验证码登录
func (a *API) SmsLogin(ctx context.Context, req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	var rsp respond.LoginRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/users/sms-login", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// Register 注册
// SmsCode 为 OTP 服务校验通过后的验证码，后端据此确认手机号归属并签发自己的 token
func (a *API) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	var rsp respond.RegisterRespond
	if err := a.tc.RequestJSON(ctx, http.MethodPost, "/users/register", req, &rsp); err != nil {
		return nil, err
	}
	return &rsp, nil
}

// Logout 通知服务端登出（使 refresh token 作废）
func (a *API) Logout(ctx context.Context) error {
	return a.tc.RequestJSON(ctx, http.MethodPost, "/users/logout", nil, nil)
}
