package application

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/EthanQC/im-router/pkg/zlog"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/vo"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

var _ in.MessageSender = (*MessageDispatcher)(nil)

// MessageDispatcher 消息路由分发器，无状态，可并发调用。
// 存储和队列的错误直接返回，不重试，也不回滚已发出的载体
type MessageDispatcher struct {
	resolver    *PresenceResolver
	publisher   out.EnvelopePublisher
	multicaster in.ResultMulticaster
}

// NewMessageDispatcher 创建消息分发器
func NewMessageDispatcher(
	resolver *PresenceResolver,
	publisher out.EnvelopePublisher,
	multicaster in.ResultMulticaster,
) *MessageDispatcher {
	return &MessageDispatcher{
		resolver:    resolver,
		publisher:   publisher,
		multicaster: multicaster,
	}
}

// SendPrivateMessage 发送私聊消息
func (d *MessageDispatcher) SendPrivateMessage(ctx context.Context, msg *entity.PrivateMessage) error {
	if msg == nil {
		return nil
	}
	terminals := validTerminals(ctx, msg.RecvTerminals)
	if len(terminals) == 0 {
		return nil
	}

	if err := d.sendPrivateToReceiver(ctx, msg, terminals); err != nil {
		return err
	}

	// 同步范围是发送者除发送终端外的全部终端，与 RecvTerminals 无关
	if msg.SendToSelf {
		return d.syncToSelf(ctx, entity.CmdPrivateMessage, msg.Sender, msg.Payload)
	}
	return nil
}

// sendPrivateToReceiver 逐个终端解析接收方，在线则投递，离线按需回执
func (d *MessageDispatcher) sendPrivateToReceiver(ctx context.Context, msg *entity.PrivateMessage, terminals []entity.Terminal) error {
	for _, terminal := range terminals {
		receiver := entity.UserRef{UserID: msg.RecvID, Terminal: terminal}

		serverID, online, err := d.resolver.LookupDestination(ctx, receiver.UserID, receiver.Terminal)
		if err != nil {
			return err
		}

		if online {
			envelope := &entity.DeliveryEnvelope{
				Cmd:         entity.CmdPrivateMessage,
				Sender:      msg.Sender,
				Receivers:   []entity.UserRef{receiver},
				SendResult:  msg.SendResult,
				Payload:     msg.Payload,
				Destination: vo.QueueDestination(entity.CmdPrivateMessage, serverID),
			}
			if err := d.publish(ctx, envelope); err != nil {
				return err
			}
			continue
		}

		// 不要回执的消息离线即丢弃
		if msg.SendResult {
			d.multicaster.Multicast(ctx, entity.ListenerPrivate, &entity.SendResult{
				Sender:   msg.Sender,
				Receiver: receiver,
				Code:     entity.SendCodeNotOnline,
				Payload:  msg.Payload,
			})
		}
	}
	return nil
}

// SendGroupMessage 发送群聊消息：一次批量解析全部接收终端，
// 按服务器分组，每台服务器只投递一个载体
func (d *MessageDispatcher) SendGroupMessage(ctx context.Context, msg *entity.GroupMessage) error {
	if msg == nil {
		return nil
	}
	recvIDs := lo.Uniq(msg.RecvIDs)
	terminals := validTerminals(ctx, msg.RecvTerminals)
	if len(recvIDs) == 0 || len(terminals) == 0 {
		return nil
	}

	refs := make([]entity.UserRef, 0, len(recvIDs)*len(terminals))
	for _, recvID := range recvIDs {
		for _, terminal := range terminals {
			refs = append(refs, entity.UserRef{UserID: recvID, Terminal: terminal})
		}
	}

	serverIDs, err := d.resolver.LookupRefs(ctx, refs)
	if err != nil {
		return err
	}

	routes, offline := partitionByServer(refs, serverIDs)
	for _, route := range routes {
		envelope := &entity.DeliveryEnvelope{
			Cmd:         entity.CmdGroupMessage,
			Sender:      msg.Sender,
			Receivers:   route.receivers,
			SendResult:  msg.SendResult,
			Payload:     msg.Payload,
			Destination: vo.QueueDestination(entity.CmdGroupMessage, route.serverID),
		}
		if err := d.publish(ctx, envelope); err != nil {
			return err
		}
	}

	if msg.SendResult {
		for _, receiver := range offline {
			d.multicaster.Multicast(ctx, entity.ListenerGroup, &entity.SendResult{
				Sender:   msg.Sender,
				Receiver: receiver,
				Code:     entity.SendCodeNotOnline,
				Payload:  msg.Payload,
			})
		}
	}

	return d.syncToSelf(ctx, entity.CmdGroupMessage, msg.Sender, msg.Payload)
}

// syncToSelf 推送给发送者除当前终端外的其他在线终端，
// 不要回执，离线直接跳过
func (d *MessageDispatcher) syncToSelf(ctx context.Context, cmd entity.CommandKind, sender entity.UserRef, payload any) error {
	others := lo.Map(lo.Without(entity.AllTerminals(), sender.Terminal), func(t entity.Terminal, _ int) entity.UserRef {
		return entity.UserRef{UserID: sender.UserID, Terminal: t}
	})

	serverIDs, err := d.resolver.LookupRefs(ctx, others)
	if err != nil {
		return err
	}

	for i, serverID := range serverIDs {
		if serverID == "" {
			continue
		}
		envelope := &entity.DeliveryEnvelope{
			Cmd:         cmd,
			Sender:      sender,
			Receivers:   []entity.UserRef{others[i]},
			SendResult:  false,
			Payload:     payload,
			Destination: vo.QueueDestination(cmd, serverID),
		}
		if err := d.publish(ctx, envelope); err != nil {
			return err
		}
	}
	return nil
}

func (d *MessageDispatcher) publish(ctx context.Context, envelope *entity.DeliveryEnvelope) error {
	if err := d.publisher.Publish(ctx, envelope); err != nil {
		return fmt.Errorf("publish %s envelope to %s failed: %w", envelope.Cmd, envelope.Destination, err)
	}
	zlog.C(ctx).Debug("envelope published",
		zap.Stringer("cmd", envelope.Cmd),
		zap.String("destination", envelope.Destination),
		zap.Int("receivers", len(envelope.Receivers)),
	)
	return nil
}

// serverRoute 同一台服务器上的接收者
type serverRoute struct {
	serverID  string
	receivers []entity.UserRef
}

// partitionByServer 按服务器分组，服务器顺序取首次出现的位置
func partitionByServer(refs []entity.UserRef, serverIDs []string) ([]*serverRoute, []entity.UserRef) {
	var (
		routes  []*serverRoute
		offline []entity.UserRef
		index   = make(map[string]*serverRoute)
	)

	for i, serverID := range serverIDs {
		if serverID == "" {
			offline = append(offline, refs[i])
			continue
		}
		route, ok := index[serverID]
		if !ok {
			route = &serverRoute{serverID: serverID}
			index[serverID] = route
			routes = append(routes, route)
		}
		route.receivers = append(route.receivers, refs[i])
	}
	return routes, offline
}

// validTerminals 去重并丢弃未知终端
func validTerminals(ctx context.Context, terminals []entity.Terminal) []entity.Terminal {
	return lo.Filter(lo.Uniq(terminals), func(t entity.Terminal, _ int) bool {
		if !t.Valid() {
			zlog.C(ctx).Warn("skip unknown terminal", zap.Int("terminal", int(t)))
			return false
		}
		return true
	})
}
