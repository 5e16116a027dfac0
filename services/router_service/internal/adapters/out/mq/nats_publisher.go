package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

var _ out.EnvelopePublisher = (*NatsEnvelopePublisher)(nil)

// NatsEnvelopePublisher 以队列名为 subject 发布投递载体
type NatsEnvelopePublisher struct {
	conn *nats.Conn
}

func NewNatsEnvelopePublisher(conn *nats.Conn) *NatsEnvelopePublisher {
	return &NatsEnvelopePublisher{conn: conn}
}

func (p *NatsEnvelopePublisher) Publish(ctx context.Context, envelope *entity.DeliveryEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal %s envelope failed: %w", envelope.Cmd, err)
	}

	msg := nats.NewMsg(envelope.Destination)
	msg.Data = data
	msg.Header.Set("cmd", envelope.Cmd.String())

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("nats publish to %s failed: %w", envelope.Destination, err)
	}

	envelopePublished.WithLabelValues(envelope.Cmd.String(), "nats").Inc()
	return nil
}
