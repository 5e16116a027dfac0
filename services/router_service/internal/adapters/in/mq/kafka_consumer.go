package mq

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

// KafkaResultConsumer 消费网关回传的发送结果
type KafkaResultConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	handler       *consumerGroupHandler
	cancel        context.CancelFunc
	done          chan struct{}
}

// NewKafkaResultConsumer 创建Kafka结果消费者
func NewKafkaResultConsumer(brokers []string, groupID string, multicaster in.ResultMulticaster) (*KafkaResultConsumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumerGroup, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer group: %w", err)
	}

	return &KafkaResultConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{TopicPrivateResult, TopicGroupResult},
		handler:       newConsumerGroupHandler(multicaster, zap.L().Named("kafka_result_consumer")),
		done:          make(chan struct{}),
	}, nil
}

// Start 后台消费，直到 ctx 取消或 Stop
func (c *KafkaResultConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)
	logger := c.handler.logger

	go func() {
		for err := range c.consumerGroup.Errors() {
			logger.Error("consumer group error", zap.Error(err))
		}
	}()

	go func() {
		defer close(c.done)
		for {
			if err := c.consumerGroup.Consume(ctx, c.topics, c.handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				logger.Error("consume failed", zap.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	logger.Info("kafka result consumer started", zap.Strings("topics", c.topics))
	return nil
}

// Stop 停止消费
func (c *KafkaResultConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	return c.consumerGroup.Close()
}

// consumerGroupHandler 消费组处理器
type consumerGroupHandler struct {
	resultHandler
}

func newConsumerGroupHandler(multicaster in.ResultMulticaster, logger *zap.Logger) *consumerGroupHandler {
	return &consumerGroupHandler{resultHandler{multicaster: multicaster, logger: logger}}
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			h.handle(session.Context(), message.Topic, message.Value)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
