package response

import (
	"errors"
	"net/http"

	"go-rent-market/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应（可传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FieldError 校验类失败，data.location 指向出错字段，给前端做表单提示
func FieldError(code int, msg, field string) Resp {
	return New(code, msg, map[string]string{
		"reason":   "ValidationError",
		"location": field,
	})
}

// Domain 把领域错误映射成 (HTTP 状态, 响应体)。这里是存储/业务细节
// 外泄的最后一道关口：没认出来的错误一律 500 且不带内部信息
func Domain(err error) (int, Resp) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, FieldError(CodeBadRequest, ve.Reason, ve.Field)
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, Error(CodeBadRequest, "The `id` is not valid")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Error(CodeNotFound, "")
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, FieldError(CodeUnprocessable, "User already exists", "email")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error(CodeUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, Error(CodeForbidden, "")
	default:
		return http.StatusInternalServerError, Error(CodeServerError, "")
	}
}

// DomainUnprocessable 注册接口的约定：校验失败也按 422 报
func DomainUnprocessable(err error) (int, Resp) {
	st, r := Domain(err)
	if st == http.StatusBadRequest {
		r.Code = CodeUnprocessable
		return http.StatusUnprocessableEntity, r
	}
	return st, r
}
