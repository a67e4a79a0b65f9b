package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeNetwork, "请求服务器失败")

	assert.Equal(t, "请求服务器失败: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	var codeErr *CodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, CodeNetwork, codeErr.Code)
}

func TestGetCodeAndMsg(t *testing.T) {
	assert.Equal(t, CodeNotFound, GetCode(ErrNotFound))
	// 非 CodeError 一律按服务繁忙处理
	assert.Equal(t, CodeServerBusy, GetCode(errors.New("boom")))
	assert.Equal(t, ErrServerBusy.Msg, GetMsg(errors.New("boom")))

	// 包装后的错误仍能取到原始码
	wrapped := fmt.Errorf("outer: %w", ErrUnauthorized)
	assert.Equal(t, CodeUnauthorized, GetCode(wrapped))
}

func TestFromCode(t *testing.T) {
	// 服务端给了消息时原样保留
	err := FromCode(CodeInvalidParam, "手机号格式不正确")
	assert.Equal(t, "手机号格式不正确", err.Msg)
	assert.True(t, IsValidation(err))

	// 没给消息时退到预定义实例
	assert.Equal(t, ErrNotFound, FromCode(CodeNotFound, ""))
	assert.Equal(t, ErrServerBusy, FromCode(9999, ""))
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsAuth(ErrUnauthorized))
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNetwork(ErrNetwork))
	assert.False(t, IsAuth(ErrNotFound))
	assert.False(t, IsNotFound(errors.New("plain")))
}
