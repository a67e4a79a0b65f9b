package validate

import (
	"testing"

	"kama_chat_client/internal/dto/request"
	"kama_chat_client/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValid(t *testing.T) {
	require.NoError(t, Init("zh"))
	err := Struct(request.LoginRequest{Telephone: "13800000000", Password: "secret123"})
	assert.NoError(t, err)
}

func TestStructInvalidReturnsTranslatedMessage(t *testing.T) {
	require.NoError(t, Init("zh"))
	err := Struct(request.LoginRequest{Telephone: "13800000000", Password: "abc"})
	require.Error(t, err)
	assert.True(t, errorx.IsValidation(err))
	// 提示使用 json 字段名而不是 Go 字段名
	assert.Contains(t, errorx.GetMsg(err), "password")
	assert.NotContains(t, errorx.GetMsg(err), "Password")
}

func TestStructMissingRequiredField(t *testing.T) {
	require.NoError(t, Init("zh"))
	err := Struct(request.SendSmsCodeRequest{})
	require.Error(t, err)
	assert.True(t, errorx.IsValidation(err))
	assert.Contains(t, errorx.GetMsg(err), "telephone")
}
