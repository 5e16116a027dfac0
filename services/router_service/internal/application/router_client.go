package application

import (
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

// RouterClient 把分发器和在线状态查询聚合成一个入口
type RouterClient struct {
	*MessageDispatcher
	*PresenceResolver
}

var _ in.RouterClient = (*RouterClient)(nil)

// NewRouterClient 组装客户端
func NewRouterClient(dispatcher *MessageDispatcher, resolver *PresenceResolver) *RouterClient {
	return &RouterClient{
		MessageDispatcher: dispatcher,
		PresenceResolver:  resolver,
	}
}
