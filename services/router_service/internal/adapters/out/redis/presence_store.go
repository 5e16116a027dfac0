package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

// 每次 SCAN 的建议条数，单个用户最多只有几个终端 key
const scanCount = 64

// PresenceStoreRedis 网关写入的 (user, terminal) -> serverId 映射的只读视图
type PresenceStoreRedis struct {
	client *redis.Client
}

func NewPresenceStoreRedis(client *redis.Client) out.PresenceStore {
	return &PresenceStoreRedis{client: client}
}

func (s *PresenceStoreRedis) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %s failed: %w", key, err)
	}
	return val, nil
}

func (s *PresenceStoreRedis) MultiGet(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return []string{}, nil
	}

	results, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget %d keys failed: %w", len(keys), err)
	}

	values := make([]string, len(keys))
	for i, res := range results {
		if i >= len(values) {
			break
		}
		// 不存在的 key 返回 nil
		if str, ok := res.(string); ok {
			values[i] = str
		}
	}
	return values, nil
}

func (s *PresenceStoreRedis) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %s failed: %w", pattern, err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
