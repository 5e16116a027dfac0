package out

import (
	"context"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

//go:generate mockgen -source=envelope_publisher.go -destination=../../mocks/mock_envelope_publisher.go -package=mocks

// EnvelopePublisher 把投递载体发送到 envelope.Destination 对应的队列
type EnvelopePublisher interface {
	Publish(ctx context.Context, envelope *entity.DeliveryEnvelope) error
}
