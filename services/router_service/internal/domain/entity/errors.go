package entity

import "errors"

var (
	// 终端相关
	ErrUnknownTerminal = errors.New("unknown terminal")

	// 监听器注册相关
	ErrRegistrySealed    = errors.New("listener registry is sealed")
	ErrDuplicateListener = errors.New("listener already registered")

	// 回执载荷无法转换为监听器声明的类型
	ErrPayloadCoercion = errors.New("payload coercion failed")
)
