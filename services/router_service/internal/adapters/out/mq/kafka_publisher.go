package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

var _ out.EnvelopePublisher = (*KafkaEnvelopePublisher)(nil)

// KafkaEnvelopePublisher 把投递载体写入网关服务器对应的 topic
type KafkaEnvelopePublisher struct {
	producer sarama.SyncProducer
}

// NewKafkaEnvelopePublisher 创建Kafka投递器
func NewKafkaEnvelopePublisher(brokers []string) (*KafkaEnvelopePublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 10 * time.Second
	// 同一发送者的消息落在同一分区，保证顺序
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewKafkaEnvelopePublisherWithProducer(producer), nil
}

// NewKafkaEnvelopePublisherWithProducer 使用已有的 producer
func NewKafkaEnvelopePublisherWithProducer(producer sarama.SyncProducer) *KafkaEnvelopePublisher {
	return &KafkaEnvelopePublisher{producer: producer}
}

func (p *KafkaEnvelopePublisher) Publish(ctx context.Context, envelope *entity.DeliveryEnvelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal %s envelope failed: %w", envelope.Cmd, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: KafkaTopic(envelope.Destination),
		Key:   sarama.StringEncoder(strconv.FormatInt(envelope.Sender.UserID, 10)),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("cmd"), Value: []byte(envelope.Cmd.String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send to topic %s failed: %w", msg.Topic, err)
	}

	envelopePublished.WithLabelValues(envelope.Cmd.String(), "kafka").Inc()
	return nil
}

func (p *KafkaEnvelopePublisher) Close() error {
	return p.producer.Close()
}
