package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kama_chat_client/internal/api"
	"kama_chat_client/internal/config"
	"kama_chat_client/internal/infrastructure/logger"
	"kama_chat_client/internal/infrastructure/otp"
	"kama_chat_client/internal/realtime"
	"kama_chat_client/internal/service/auth"
	"kama_chat_client/internal/service/syncer"
	"kama_chat_client/internal/store"
	"kama_chat_client/internal/transport"
	"kama_chat_client/internal/validate"
	"kama_chat_client/pkg/errorx"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化校验器（含翻译）
	lang := conf.MainConfig.Lang
	if lang == "" {
		lang = "zh"
	}
	if err := validate.Init(lang); err != nil {
		zap.L().Fatal("校验器初始化失败", zap.Error(err))
	}
	zap.L().Info("校验器初始化成功")

	// 4. 本地 token 存储
	tokenFile := conf.AuthConfig.TokenFile
	if tokenFile == "" {
		tokenFile = "data/tokens.json"
	}
	tokens, err := transport.NewTokenStore(tokenFile)
	if err != nil {
		zap.L().Fatal("token 存储初始化失败", zap.Error(err))
	}

	// 5. 组装各层（显式注入，不用包级单例）
	stores := store.New()
	channel := realtime.NewChannel(&conf.RealtimeConfig, conf.ServerConfig.WsURL)
	// 会话终结回调：token 刷新失败时关闭通道并清空用户，相当于路由回登录页
	tc := transport.New(&conf.ServerConfig, tokens, func() {
		channel.Close()
		stores.SessionUser.Clear()
		zap.L().Warn("会话已终结，请重新登录")
	})
	apiClient := api.New(tc)
	sync := syncer.New(apiClient, channel, stores)
	otpSvc := otp.New(conf.OtpConfig)
	authSvc := auth.NewService(apiClient, otpSvc, tc, channel, stores, sync)
	zap.L().Info("客户端初始化成功")

	// 6. 尝试恢复上次会话
	ctx := context.Background()
	if err := authSvc.Restore(ctx); err != nil {
		if errorx.IsAuth(err) {
			zap.L().Info("本地没有有效会话，等待登录")
		} else {
			zap.L().Error("会话恢复失败", zap.Error(err))
		}
	}

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit

	// 7. 清理：停钩子、关通道
	if stores.SessionUser.Get() != nil {
		authSvc.Logout(ctx)
	}

	zap.L().Info("客户端已退出")
}
