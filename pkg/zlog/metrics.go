package zlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"
)

var logCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "app_log_total",
		Help: "Log entries written, by level and named logger.",
	},
	[]string{"service", "level", "logger"},
)

// RegisterMetrics 由 main 包注册到 prometheus
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(logCounter)
}

// metricsCore 在日志真正写出时计数
type metricsCore struct {
	zapcore.Core
	service string
}

func (m metricsCore) With(fields []zapcore.Field) zapcore.Core {
	return metricsCore{Core: m.Core.With(fields), service: m.service}
}

func (m metricsCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if m.Enabled(ent.Level) {
		return ce.AddCore(ent, m)
	}
	return ce
}

func (m metricsCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	name := ent.LoggerName
	if name == "" {
		name = "root"
	}
	logCounter.WithLabelValues(m.service, ent.Level.String(), name).Inc()
	return m.Core.Write(ent, fields)
}

func wrapWithMetric(c zapcore.Core, cfg Config) zapcore.Core {
	if !cfg.EnableMetric {
		return c
	}
	return metricsCore{Core: c, service: cfg.Service}
}
