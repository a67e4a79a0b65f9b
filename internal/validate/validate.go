// Package validate 提供出站请求体的客户端预校验
// 为什么：参数明显不合法时在本地直接拦下，给出和服务端一致的可读提示，
// 省一次注定失败的网络往返；服务端仍是最终裁决方
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"kama_chat_client/pkg/errorx"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// validate 全局校验器
var validate *validator.Validate

// trans 全局翻译器
var trans ut.Translator

// Init 初始化校验器和翻译器
// locale 指定提示语言，例如 "zh" 或 "en"
func Init(locale string) (err error) {
	validate = validator.New()

	// 注册一个获取 json tag 的自定义方法
	// 默认情况下 validator 使用结构体字段名（如 RePassword），这里改为使用 json tag
	// 为什么：提示信息面向用户，应该出现接口字段名而不是 Go 结构体字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	zhT := zh.New() // 中文翻译器
	enT := en.New() // 英文翻译器

	// 第一个参数是备用（fallback）的语言环境，后面的参数是应该支持的语言环境
	uni := ut.New(enT, zhT, enT)

	var ok bool
	trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	// 根据 locale 注册对应的默认翻译规则
	switch locale {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(validate, trans)
	default:
		err = en_translations.RegisterDefaultTranslations(validate, trans)
	}
	return
}

// Struct 校验一个请求结构体
// 校验失败时返回带可读提示的参数错误，提示内容已翻译并去掉结构体名前缀
func Struct(obj any) error {
	if validate == nil {
		// 未初始化时退化为英文默认
		if err := Init("en"); err != nil {
			return err
		}
	}
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &validationErrs); ok {
		fields := removeTopStruct(validationErrs.Translate(trans))
		parts := make([]string, 0, len(fields))
		for _, msg := range fields {
			parts = append(parts, msg)
		}
		return errorx.New(errorx.CodeInvalidParam, strings.Join(parts, "；"))
	}
	return errorx.Wrap(err, errorx.CodeInvalidParam, errorx.ErrInvalidParam.Msg)
}

// asValidationErrors 类型断言辅助
func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if ok {
		*target = v
	}
	return ok
}

// removeTopStruct 去除提示信息中的结构体名称
// validator 返回的错误信息默认带有结构体名称（如 "LoginRequest.telephone"），用户不需要这个前缀
func removeTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}
