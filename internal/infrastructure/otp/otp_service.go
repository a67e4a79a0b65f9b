package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"kama_chat_client/internal/config"
	"kama_chat_client/pkg/errorx"
	"kama_chat_client/pkg/util/random"

	"go.uber.org/zap"
)

// httpOtpService 基于 HTTP 的 OTP 服务实现
// 直接访问服务商接口，不经过应用后端的 transport（不携带应用 token）
type httpOtpService struct {
	providerURL string
	appKey      string
	http        *http.Client
}

// otpVerifyRespond 服务商校验接口的响应
type otpVerifyRespond struct {
	Verified bool   `json:"verified"`
	Proof    string `json:"proof"` // 可提交给应用后端的一次性凭证
	Message  string `json:"message"`
}

func (s *httpOtpService) RequestCode(ctx context.Context, telephone string) error {
	body, _ := json.Marshal(map[string]string{
		"app_key":   s.appKey,
		"telephone": telephone,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.providerURL+"/otp/request", bytes.NewReader(body))
	if err != nil {
		return errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		zap.L().Error("otp request failed", zap.Error(err))
		return errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errorx.Newf(errorx.CodeServerBusy, "验证码服务异常，状态码 %d", resp.StatusCode)
	}
	return nil
}

func (s *httpOtpService) VerifyCode(ctx context.Context, telephone, code string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"app_key":   s.appKey,
		"telephone": telephone,
		"code":      code,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.providerURL+"/otp/verify", bytes.NewReader(body))
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		zap.L().Error("otp verify failed", zap.Error(err))
		return "", errorx.Wrap(err, errorx.CodeNetwork, errorx.ErrNetwork.Msg)
	}
	defer resp.Body.Close()

	var rsp otpVerifyRespond
	if err := json.NewDecoder(resp.Body).Decode(&rsp); err != nil {
		return "", errorx.Wrap(err, errorx.CodeNetwork, "验证码服务响应解析失败")
	}
	if !rsp.Verified {
		msg := rsp.Message
		if msg == "" {
			msg = "验证码错误或已过期"
		}
		return "", errorx.New(errorx.CodeInvalidParam, msg)
	}
	return rsp.Proof, nil
}

// mockOtpService 本地开发用的 mock 实现
// 验证码打印到控制台并保存在内存里，校验时比对
type mockOtpService struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *mockOtpService) RequestCode(_ context.Context, telephone string) error {
	code := strconv.Itoa(random.GetRandomInt(6))
	fmt.Printf("【MockOTP】手机号: %s, 验证码: %s\n", telephone, code)
	s.mu.Lock()
	s.codes[telephone] = code
	s.mu.Unlock()
	return nil
}

func (s *mockOtpService) VerifyCode(_ context.Context, telephone, code string) (string, error) {
	s.mu.Lock()
	want, ok := s.codes[telephone]
	s.mu.Unlock()
	if !ok || code != want {
		return "", errorx.New(errorx.CodeInvalidParam, "验证码错误或已过期")
	}
	return "mock-proof-" + telephone, nil
}

// shouldUseMock 判断是否使用 mock 实现
func shouldUseMock(cfg config.OtpConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("KAMACHAT_OTP_MODE")))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	return cfg.ProviderURL == ""
}

// New 根据配置创建 OTP 服务
func New(cfg config.OtpConfig) OtpService {
	if shouldUseMock(cfg) {
		zap.L().Info("OTP 服务使用本地 mock 实现")
		return &mockOtpService{codes: make(map[string]string)}
	}
	return &httpOtpService{
		providerURL: strings.TrimRight(cfg.ProviderURL, "/"),
		appKey:      cfg.AppKey,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}
