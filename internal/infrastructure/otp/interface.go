// Package otp 对接第三方手机号验证服务
// 本文件定义验证码服务接口，遵循依赖倒置原则
package otp

import "context"

// OtpService 手机号验证码服务接口
// 抽象第三方 OTP 服务（仅用于注册/找回密码时验证手机号归属），
// 验证通过得到的验证码随注册请求提交给后端，由后端签发自己的 token；
// OTP 服务商的会话从不充当应用会话
type OtpService interface {
	// RequestCode 请求向手机号下发验证码
	RequestCode(ctx context.Context, telephone string) error
	// VerifyCode 校验验证码，通过时返回可提交给后端的凭证
	VerifyCode(ctx context.Context, telephone, code string) (string, error)
}

// 确保两个实现都满足 OtpService 接口
var (
	_ OtpService = (*httpOtpService)(nil)
	_ OtpService = (*mockOtpService)(nil)
)
