package mq

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var envelopePublished = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "im_router_envelope_published_total",
		Help: "Delivery envelopes published to gateway queues",
	},
	[]string{"cmd", "transport"},
)

// RegisterMetrics 注册投递相关指标
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(envelopePublished)
}

// KafkaTopic Kafka topic 不允许出现 ':'，队列名中的分隔符换成 '.'
func KafkaTopic(destination string) string {
	return strings.ReplaceAll(destination, ":", ".")
}
