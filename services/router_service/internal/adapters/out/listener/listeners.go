package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/EthanQC/im-router/services/router_service/internal/application"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

var sendResultTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "im_router_send_result_total",
		Help: "Send results seen by the multicaster",
	},
	[]string{"category", "code"},
)

// RegisterMetrics 注册发送结果指标
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(sendResultTotal)
}

// Options 内置监听器的开关
type Options struct {
	Logger *zap.Logger
	// Inbox 为空时不启用离线收件箱
	Inbox out.OfflineInbox
}

// RegisterBuiltins 注册日志、指标和离线收件箱监听器
func RegisterBuiltins(reg *application.ListenerRegistry, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}

	if err := application.Listen(reg, "log", entity.ListenerAll, LogResult(logger)); err != nil {
		return err
	}
	for _, category := range []entity.ListenerType{entity.ListenerPrivate, entity.ListenerGroup} {
		name := "metrics." + category.String()
		if err := application.Listen(reg, name, category, CountResult(category)); err != nil {
			return err
		}
	}
	if opts.Inbox != nil {
		if err := application.Listen(reg, "offline_inbox", entity.ListenerAll, StoreOffline(opts.Inbox)); err != nil {
			return err
		}
	}
	return nil
}

// LogResult 记录每条发送结果
func LogResult(logger *zap.Logger) application.ListenerFunc[any] {
	return func(_ context.Context, r *application.TypedResult[any]) error {
		logger.Info("send result",
			zap.Int64("sender", r.Sender.UserID),
			zap.Stringer("sender_terminal", r.Sender.Terminal),
			zap.Int64("receiver", r.Receiver.UserID),
			zap.Stringer("receiver_terminal", r.Receiver.Terminal),
			zap.Stringer("code", r.Code),
		)
		return nil
	}
}

// CountResult 按类别和结果码计数
func CountResult(category entity.ListenerType) application.ListenerFunc[any] {
	return func(_ context.Context, r *application.TypedResult[any]) error {
		sendResultTotal.WithLabelValues(category.String(), r.Code.String()).Inc()
		return nil
	}
}

// StoreOffline 接收方不在线时把原始载荷写入离线收件箱
func StoreOffline(inbox out.OfflineInbox) application.ListenerFunc[json.RawMessage] {
	return func(ctx context.Context, r *application.TypedResult[json.RawMessage]) error {
		if r.Code != entity.SendCodeNotOnline {
			return nil
		}
		err := inbox.Append(ctx, &entity.OfflineRecord{
			Sender:    r.Sender,
			Receiver:  r.Receiver,
			Payload:   r.Payload,
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return fmt.Errorf("store offline result for user %d failed: %w", r.Receiver.UserID, err)
		}
		return nil
	}
}
