package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

const (
	// 离线收件箱Key前缀 (List: 每个元素是一条 OfflineRecord JSON)
	offlineKeyPrefix = "im:router:offline:"
)

// OfflineInboxRedis 离线收件箱，只保留最近 maxLen 条，整体 ttl 后过期
type OfflineInboxRedis struct {
	client *redis.Client
	ttl    time.Duration
	maxLen int64
}

func NewOfflineInboxRedis(client *redis.Client, ttl time.Duration, maxLen int64) out.OfflineInbox {
	return &OfflineInboxRedis{client: client, ttl: ttl, maxLen: maxLen}
}

func (r *OfflineInboxRedis) getKey(userID int64) string {
	return fmt.Sprintf("%s%d", offlineKeyPrefix, userID)
}

func (r *OfflineInboxRedis) Append(ctx context.Context, record *entity.OfflineRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal offline record failed: %w", err)
	}

	key := r.getKey(record.Receiver.UserID)
	pipe := r.client.Pipeline()
	pipe.RPush(ctx, key, string(data))
	if r.maxLen > 0 {
		pipe.LTrim(ctx, key, -r.maxLen, -1)
	}
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append offline record failed: %w", err)
	}
	return nil
}

func (r *OfflineInboxRedis) List(ctx context.Context, userID int64) ([]*entity.OfflineRecord, error) {
	items, err := r.client.LRange(ctx, r.getKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list offline records failed: %w", err)
	}

	records := make([]*entity.OfflineRecord, 0, len(items))
	for _, item := range items {
		var record entity.OfflineRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}
	return records, nil
}
