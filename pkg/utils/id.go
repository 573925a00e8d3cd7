package utils

import "github.com/google/uuid"

// NewID 生成不透明主键（uuid v4 字符串）
func NewID() string { return uuid.NewString() }

// ValidID 查库前先校验格式，烂 id 直接 400，不打到存储层
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
