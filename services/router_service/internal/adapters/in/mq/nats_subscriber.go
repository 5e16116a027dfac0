package mq

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

// NatsResultSubscriber 以队列组方式订阅回传的发送结果，多个实例分摊消费
type NatsResultSubscriber struct {
	conn    *nats.Conn
	queue   string
	handler resultHandler
	subs    []*nats.Subscription
	ctx     context.Context
}

func NewNatsResultSubscriber(conn *nats.Conn, queue string, multicaster in.ResultMulticaster) *NatsResultSubscriber {
	return &NatsResultSubscriber{
		conn:  conn,
		queue: queue,
		handler: resultHandler{
			multicaster: multicaster,
			logger:      zap.L().Named("nats_result_subscriber"),
		},
		ctx: context.Background(),
	}
}

func (s *NatsResultSubscriber) Start(ctx context.Context) error {
	s.ctx = ctx
	for topic := range ResultTopics {
		sub, err := s.conn.QueueSubscribe(topic, s.queue, s.onMessage)
		if err != nil {
			_ = s.Stop()
			return fmt.Errorf("nats subscribe %s failed: %w", topic, err)
		}
		s.subs = append(s.subs, sub)
	}
	s.handler.logger.Info("nats result subscriber started", zap.Int("subjects", len(s.subs)))
	return nil
}

func (s *NatsResultSubscriber) onMessage(msg *nats.Msg) {
	s.handler.handle(s.ctx, msg.Subject, msg.Data)
}

func (s *NatsResultSubscriber) Stop() error {
	var firstErr error
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.subs = nil
	return firstErr
}
