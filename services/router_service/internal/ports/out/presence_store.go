package out

import "context"

//go:generate mockgen -source=presence_store.go -destination=../../mocks/mock_presence_store.go -package=mocks

// PresenceStore 在线状态存储，由网关层维护 (user, terminal) -> serverId
type PresenceStore interface {
	// Get 单个查询，不存在返回空串
	Get(ctx context.Context, key string) (string, error)
	// MultiGet 批量查询，一次往返，结果与 keys 按位置对齐，不存在的位置为空串
	MultiGet(ctx context.Context, keys []string) ([]string, error)
	// ScanKeys 返回匹配通配模式的全部 key
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
}
