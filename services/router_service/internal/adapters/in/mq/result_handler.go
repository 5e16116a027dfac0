package mq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/EthanQC/im-router/pkg/zlog"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

const (
	// 网关回传发送结果的 topic / subject
	TopicPrivateResult = "im.result.private"
	TopicGroupResult   = "im.result.group"
)

var ErrEmptyResult = errors.New("empty send result")

// ResultTopics topic 与结果类别的对应关系
var ResultTopics = map[string]entity.ListenerType{
	TopicPrivateResult: entity.ListenerPrivate,
	TopicGroupResult:   entity.ListenerGroup,
}

// resultMessage 回传消息体，data 可以是对象，也可以是 JSON 字符串
type resultMessage struct {
	Data json.RawMessage `json:"data"`
}

type wireResult struct {
	Sender   entity.UserRef  `json:"sender"`
	Receiver entity.UserRef  `json:"receiver"`
	Code     entity.SendCode `json:"code"`
	Payload  json.RawMessage `json:"payload"`
}

// DecodeResult 解析回传的发送结果，载荷保持原始 JSON，交给监听器时再转换
func DecodeResult(body []byte) (*entity.SendResult, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResult
	}

	var msg resultMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal result message failed: %w", err)
	}

	data := bytes.TrimSpace(msg.Data)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("unmarshal result data string failed: %w", err)
		}
		data = bytes.TrimSpace([]byte(inner))
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyResult
	}

	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("unmarshal send result failed: %w", err)
	}

	result := &entity.SendResult{
		Sender:   w.Sender,
		Receiver: w.Receiver,
		Code:     w.Code,
	}
	if len(w.Payload) > 0 && !bytes.Equal(w.Payload, []byte("null")) {
		result.Payload = w.Payload
	}
	return result, nil
}

// resultHandler 解码并广播，坏消息记录后跳过
type resultHandler struct {
	multicaster in.ResultMulticaster
	logger      *zap.Logger
}

func (h *resultHandler) handle(ctx context.Context, topic string, body []byte) {
	category, ok := ResultTopics[topic]
	if !ok {
		h.logger.Warn("unknown result topic", zap.String("topic", topic))
		return
	}

	result, err := DecodeResult(body)
	if err != nil {
		h.logger.Warn("skip send result", zap.String("topic", topic), zap.Error(err))
		return
	}
	ctx = zlog.With(ctx, zap.String("topic", topic))
	h.multicast(ctx, category, result)
}

// multicast 在消费协程上运行，严格模式下的 DPanic 也只丢弃这一条结果
func (h *resultHandler) multicast(ctx context.Context, category entity.ListenerType, result *entity.SendResult) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("multicast send result panicked",
				zap.Stringer("category", category),
				zap.Int64("receiver", result.Receiver.UserID),
				zap.Any("panic", r),
			)
		}
	}()
	h.multicaster.Multicast(ctx, category, result)
}
