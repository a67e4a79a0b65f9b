// Package auth 负责会话编排：登录/注册/恢复/登出
// 会话建立的完整链路：取得 token 对 -> 写入本地存储 -> 写入 SessionUser store
// -> 打开实时通道 -> 启动同步钩子 -> 首次全量拉取
package auth

import (
	"context"

	"kama_chat_client/internal/api"
	"kama_chat_client/internal/dto/request"
	"kama_chat_client/internal/dto/respond"
	"kama_chat_client/internal/infrastructure/otp"
	"kama_chat_client/internal/model"
	"kama_chat_client/internal/realtime"
	"kama_chat_client/internal/service/syncer"
	"kama_chat_client/internal/store"
	"kama_chat_client/internal/transport"
	"kama_chat_client/internal/validate"
	"kama_chat_client/pkg/errorx"
	"kama_chat_client/pkg/util/jwt"

	"go.uber.org/zap"
)

// Service 会话编排服务
type Service struct {
	api    *api.API
	otp    otp.OtpService
	tc     *transport.Client
	ch     *realtime.Channel
	stores *store.Stores
	sync   *syncer.Syncer
}

// NewService 构造函数
func NewService(a *api.API, otpSvc otp.OtpService, tc *transport.Client, ch *realtime.Channel, stores *store.Stores, sync *syncer.Syncer) *Service {
	return &Service{api: a, otp: otpSvc, tc: tc, ch: ch, stores: stores, sync: sync}
}

// Login 密码登录
func (s *Service) Login(ctx context.Context, req request.LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	rsp, err := s.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return s.establishSession(ctx, rsp)
}

// SendSmsCode 请求向手机号下发验证码（注册/短信登录共用）
func (s *Service) SendSmsCode(ctx context.Context, telephone string) error {
	if err := validate.Struct(request.SendSmsCodeRequest{Telephone: telephone}); err != nil {
		return err
	}
	return s.otp.RequestCode(ctx, telephone)
}

// SmsLogin 短信验证码登录
// 先由 OTP 服务校验验证码，校验通过后才发给后端换 token
func (s *Service) SmsLogin(ctx context.Context, req request.SmsLoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := s.otp.VerifyCode(ctx, req.Telephone, req.SmsCode); err != nil {
		return err
	}
	rsp, err := s.api.SmsLogin(ctx, req)
	if err != nil {
		return err
	}
	return s.establishSession(ctx, rsp)
}

// Register 注册
// 注册成功即视为登录，直接建立会话
func (s *Service) Register(ctx context.Context, req request.RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := s.otp.VerifyCode(ctx, req.Telephone, req.SmsCode); err != nil {
		return err
	}
	rsp, err := s.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.establishSession(ctx, rsp)
}

// Restore 启动时恢复会话（闪屏检查）
// 本地有 access token 时取出其中的用户 id，重新拉取资料并建立会话；
// token 已过期也照常发起，transport 会走一次静默刷新
func (s *Service) Restore(ctx context.Context) error {
	access := s.tc.Tokens().Access()
	if access == "" {
		return errorx.ErrUnauthorized
	}
	claims, err := jwt.PeekClaims(access)
	if err != nil || claims.UserID == "" {
		// 本地 token 解析不了，当作未登录处理
		zap.L().Warn("本地 token 解析失败，清空会话", zap.Error(err))
		_ = s.tc.Tokens().Clear()
		return errorx.ErrUnauthorized
	}

	// refresh token 也已过期时，拉取注定失败且刷新也救不回来，直接按未登录处理
	if refresh := s.tc.Tokens().Refresh(); refresh != "" {
		if rc, err := jwt.PeekClaims(refresh); err == nil && jwt.IsRefreshExpired(rc) {
			zap.L().Info("refresh token 已过期，清空会话")
			_ = s.tc.Tokens().Clear()
			return errorx.ErrUnauthorized
		}
	}

	info, err := s.api.GetUserInfo(ctx, claims.UserID)
	if err != nil {
		return err
	}
	user := &model.UserInfo{
		Uuid:      info.Uuid,
		Nickname:  info.Nickname,
		Avatar:    info.Avatar,
		Telephone: info.Telephone,
		Email:     info.Email,
		Gender:    info.Gender,
		Birthday:  info.Birthday,
		Signature: info.Signature,
		IsAdmin:   info.IsAdmin,
		CreatedAt: info.CreatedAt,
	}
	return s.startSession(ctx, user)
}

// Logout 登出
// 顺序有讲究：先停同步钩子和通道，保证之后不再有事件写入任何 store，
// 再清理 token 和用户数据；服务端登出失败不阻断本地清理
func (s *Service) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		zap.L().Warn("服务端登出失败，继续本地清理", zap.Error(err))
	}
	s.sync.Stop()
	s.ch.Close()
	if err := s.tc.Tokens().Clear(); err != nil {
		zap.L().Error("清理本地 token 失败", zap.Error(err))
	}
	s.stores.SessionUser.Clear()
	zap.L().Info("已登出")
}

// establishSession 登录/注册响应落地为一个可用会话
func (s *Service) establishSession(ctx context.Context, rsp *respond.LoginRespond) error {
	if err := s.tc.Tokens().Save(rsp.AccessToken, rsp.RefreshToken); err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "本地保存登录凭证失败")
	}
	user := &model.UserInfo{
		Uuid:      rsp.Uuid,
		Nickname:  rsp.Nickname,
		Avatar:    rsp.Avatar,
		Telephone: rsp.Telephone,
		Email:     rsp.Email,
		Gender:    rsp.Gender,
		Birthday:  rsp.Birthday,
		Signature: rsp.Signature,
		IsAdmin:   rsp.IsAdmin,
		CreatedAt: rsp.CreatedAt,
	}
	return s.startSession(ctx, user)
}

// startSession 写入用户、连接实时通道、启动同步钩子并做首次全量拉取
func (s *Service) startSession(ctx context.Context, user *model.UserInfo) error {
	s.stores.SessionUser.Set(user)
	if err := s.ch.Connect(user.Uuid); err != nil {
		// 连不上实时通道不算登录失败，REST 部分仍然可用；连接错误只记日志
		zap.L().Error("实时通道连接失败", zap.Error(err))
	} else {
		s.sync.Start()
	}
	s.sync.Bootstrap(ctx)
	zap.L().Info("会话已建立", zap.String("user_id", user.Uuid))
	return nil
}
