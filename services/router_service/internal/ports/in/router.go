package in

import (
	"context"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

//go:generate mockgen -source=router.go -destination=../../mocks/mock_router.go -package=mocks

// MessageSender 消息路由与分发
type MessageSender interface {
	// SendPrivateMessage 发送私聊消息，按终端逐个解析接收方所在服务器
	SendPrivateMessage(ctx context.Context, msg *entity.PrivateMessage) error
	// SendGroupMessage 发送群聊消息，按服务器分组批量投递
	SendGroupMessage(ctx context.Context, msg *entity.GroupMessage) error
}

// PresenceQuery 在线状态查询
type PresenceQuery interface {
	// IsOnline 用户是否至少有一个终端在线
	IsOnline(ctx context.Context, userID int64) (bool, error)
	// OnlineUsers 从给定用户中筛选在线用户，保持输入顺序
	OnlineUsers(ctx context.Context, userIDs []int64) ([]int64, error)
	// OnlineTerminals 查询每个用户在线的终端
	OnlineTerminals(ctx context.Context, userIDs []int64) (map[int64][]entity.Terminal, error)
}

// ResultMulticaster 把发送结果广播给关心该类别的监听器
type ResultMulticaster interface {
	Multicast(ctx context.Context, category entity.ListenerType, result *entity.SendResult)
}

// RouterClient 供业务服务嵌入使用的聚合接口
type RouterClient interface {
	MessageSender
	PresenceQuery
}
