package domain

import (
	"errors"
	"fmt"
)

// 领域错误集合：repo/service 只返回这些，transport 统一映射 HTTP 状态
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidID          = errors.New("the `id` is not valid")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError 字段级校验错误，Field 指向首个不合法字段
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Missing 缺字段（与存量客户端约定的文案保持一致）
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("Missing %s in request body", field)}
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
