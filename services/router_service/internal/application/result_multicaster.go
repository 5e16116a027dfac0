package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/EthanQC/im-router/pkg/zlog"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

var _ in.ResultMulticaster = (*ResultMulticaster)(nil)

// ResultMulticaster 同步地把发送结果交给匹配类别的监听器。
// 单个监听器出错或 panic 只记录日志，不影响其他监听器
type ResultMulticaster struct {
	listeners []listenerEntry
	logger    *zap.Logger
}

// NewResultMulticaster 封存注册表并创建广播器。
// 载荷转换失败记为 DPanic：开发模式下直接 panic，生产模式下跳过该监听器
func NewResultMulticaster(registry *ListenerRegistry, logger *zap.Logger) *ResultMulticaster {
	if logger == nil {
		logger = zap.L()
	}
	return &ResultMulticaster{
		listeners: registry.seal(),
		logger:    logger.Named("multicaster"),
	}
}

// Multicast 广播发送结果
func (m *ResultMulticaster) Multicast(ctx context.Context, category entity.ListenerType, result *entity.SendResult) {
	if result == nil {
		return
	}

	for _, l := range m.listeners {
		if !l.category.Accepts(category) {
			continue
		}

		run, err := l.prepare(result)
		if err != nil {
			m.logger.DPanic("coerce send result payload failed",
				zap.String("listener", l.name),
				zap.Stringer("category", category),
				zap.String("payload_type", fmt.Sprintf("%T", result.Payload)),
				zap.Error(err),
			)
			continue
		}

		if err := m.invoke(ctx, run); err != nil {
			zlog.C(ctx).Error("send result listener failed",
				zap.String("listener", l.name),
				zap.Stringer("category", category),
				zap.Int64("receiver", result.Receiver.UserID),
				zap.Error(err),
			)
		}
	}
}

func (m *ResultMulticaster) invoke(ctx context.Context, run func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(errListenerPanic, fmt.Errorf("%v", r))
		}
	}()
	return run(ctx)
}

var errListenerPanic = errors.New("listener panicked")
