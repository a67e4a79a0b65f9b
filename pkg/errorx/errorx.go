package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeNetwork, "请求服务器失败")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// GetMsg 从错误中提取面向用户的提示信息
// 非 CodeError 类型的错误不直接暴露给用户，统一返回兜底文案
func GetMsg(err error) string {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Msg
	}
	return ErrServerBusy.Msg
}

// 业务状态码常量定义
// 与服务端响应 envelope 中的 code 字段保持一致
const (
	CodeSuccess      = 1000 // 成功
	CodeInvalidParam = 1001 // 请求参数错误
	CodeServerBusy   = 1005 // 服务繁忙
	CodeUnauthorized = 1006 // 未授权/会话过期
	CodeNotFound     = 1008 // 资源不存在
	CodeNetwork      = 1012 // 网络错误（客户端侧，请求未到达或响应不完整）
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy   = New(CodeServerBusy, "服务繁忙")
	ErrUnauthorized = New(CodeUnauthorized, "会话已过期，请重新登录")
	ErrNotFound     = New(CodeNotFound, "资源不存在")
	ErrNetwork      = New(CodeNetwork, "网络连接失败，请稍后重试")
)

// FromCode 将服务端返回的业务码和消息映射为 CodeError
// msg 为服务端给出的提示，优先保留原文（尤其是参数错误，需原样展示给用户）
func FromCode(code int, msg string) *CodeError {
	if msg == "" {
		switch code {
		case CodeInvalidParam:
			return ErrInvalidParam
		case CodeUnauthorized:
			return ErrUnauthorized
		case CodeNotFound:
			return ErrNotFound
		default:
			return ErrServerBusy
		}
	}
	return New(code, msg)
}

// IsAuth 检查错误是否为会话过期/未授权类型
func IsAuth(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeUnauthorized
}

// IsValidation 检查错误是否为参数校验类型
func IsValidation(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeInvalidParam
}

// IsNotFound 检查错误是否为"未找到"类型
// 列表类资源返回 404 时按"空列表"处理，上层依赖该判断
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}

// IsNetwork 检查错误是否为网络层失败
func IsNetwork(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNetwork
}
