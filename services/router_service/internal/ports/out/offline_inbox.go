package out

import (
	"context"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

//go:generate mockgen -source=offline_inbox.go -destination=../../mocks/mock_offline_inbox.go -package=mocks

// OfflineInbox 离线消息收件箱，按接收用户聚合
type OfflineInbox interface {
	Append(ctx context.Context, record *entity.OfflineRecord) error
	// List 按写入顺序返回某用户的全部离线记录
	List(ctx context.Context, userID int64) ([]*entity.OfflineRecord, error)
}
