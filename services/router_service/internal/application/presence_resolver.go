package application

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/vo"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

var _ in.PresenceQuery = (*PresenceResolver)(nil)

// PresenceResolver 把 (用户, 终端) 解析为长连接所在的服务器ID。
// 空串与 key 不存在等价，都视为离线
type PresenceResolver struct {
	store out.PresenceStore
}

// NewPresenceResolver 创建在线状态解析器
func NewPresenceResolver(store out.PresenceStore) *PresenceResolver {
	return &PresenceResolver{store: store}
}

// LookupDestination 查询单个终端所在服务器
func (r *PresenceResolver) LookupDestination(ctx context.Context, userID int64, terminal entity.Terminal) (string, bool, error) {
	serverID, err := r.store.Get(ctx, vo.PresenceKey(userID, terminal))
	if err != nil {
		return "", false, fmt.Errorf("lookup server of user %d on %s failed: %w", userID, terminal, err)
	}
	return serverID, serverID != "", nil
}

// LookupDestinations 批量查询，只访问一次存储，结果与 keys 按位置对齐
func (r *PresenceResolver) LookupDestinations(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return []string{}, nil
	}

	serverIDs, err := r.store.MultiGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("batch lookup %d presence keys failed: %w", len(keys), err)
	}
	if len(serverIDs) != len(keys) {
		return nil, fmt.Errorf("presence store returned %d values for %d keys", len(serverIDs), len(keys))
	}
	return serverIDs, nil
}

// LookupRefs 批量解析一组连接位
func (r *PresenceResolver) LookupRefs(ctx context.Context, refs []entity.UserRef) ([]string, error) {
	keys := lo.Map(refs, func(ref entity.UserRef, _ int) string {
		return vo.PresenceKey(ref.UserID, ref.Terminal)
	})
	return r.LookupDestinations(ctx, keys)
}

// IsOnline 一次通配扫描拿到该用户的全部终端 key，再批量确认值非空
func (r *PresenceResolver) IsOnline(ctx context.Context, userID int64) (bool, error) {
	keys, err := r.store.ScanKeys(ctx, vo.PresencePattern(userID))
	if err != nil {
		return false, fmt.Errorf("scan presence of user %d failed: %w", userID, err)
	}

	// 只认本用户、合法终端的 key
	keys = lo.Filter(keys, func(key string, _ int) bool {
		ref, ok := vo.ParsePresenceKey(key)
		return ok && ref.UserID == userID
	})
	if len(keys) == 0 {
		return false, nil
	}

	serverIDs, err := r.LookupDestinations(ctx, keys)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(serverIDs, func(id string) bool { return id != "" }), nil
}

// OnlineUsers 筛选在线用户，保持输入顺序并去重
func (r *PresenceResolver) OnlineUsers(ctx context.Context, userIDs []int64) ([]int64, error) {
	online, err := r.OnlineTerminals(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return lo.Filter(lo.Uniq(userIDs), func(id int64, _ int) bool {
		_, ok := online[id]
		return ok
	}), nil
}

// OnlineTerminals 一次批量查询 |userIDs| x |终端| 个 key，
// 返回每个在线用户的在线终端，终端按 AllTerminals 顺序排列
func (r *PresenceResolver) OnlineTerminals(ctx context.Context, userIDs []int64) (map[int64][]entity.Terminal, error) {
	userIDs = lo.Uniq(userIDs)
	if len(userIDs) == 0 {
		return map[int64][]entity.Terminal{}, nil
	}

	terminals := entity.AllTerminals()
	refs := make([]entity.UserRef, 0, len(userIDs)*len(terminals))
	for _, userID := range userIDs {
		for _, terminal := range terminals {
			refs = append(refs, entity.UserRef{UserID: userID, Terminal: terminal})
		}
	}

	serverIDs, err := r.LookupRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	online := make(map[int64][]entity.Terminal)
	for i, serverID := range serverIDs {
		if serverID == "" {
			continue
		}
		online[refs[i].UserID] = append(online[refs[i].UserID], refs[i].Terminal)
	}
	return online, nil
}
