package zlog

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 所有由 New 创建的 logger 共享同一个级别
var dynamicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// SetLevel 热更新日志级别，无法识别的级别按 info 处理
func SetLevel(lvl string) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(lvl)))
	if err != nil {
		parsed = zap.InfoLevel
	}
	dynamicLevel.SetLevel(parsed)
}

// GetLevel 返回当前级别
func GetLevel() string {
	return dynamicLevel.Level().String()
}

// LevelHTTPHandler 挂到 /log/level。
// PUT ?v=debug 直接修改；其余请求走 zap.AtomicLevel 自带的 JSON 接口
func LevelHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			if lvl := r.URL.Query().Get("v"); lvl != "" {
				SetLevel(lvl)
				_, _ = w.Write([]byte(GetLevel()))
				return
			}
		}
		dynamicLevel.ServeHTTP(w, r)
	}
}
