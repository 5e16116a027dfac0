package zlog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinLogger_RequestID(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	r := gin.New()
	r.Use(GinLogger())
	r.GET("/ping", func(c *gin.Context) {
		// handler 拿到的是带请求字段的 logger
		FromContext(c.Request.Context()).Info("inside")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	req.Equal(http.StatusNoContent, w.Code)
	generated := w.Header().Get(headerRequestID)
	req.NotEmpty(generated)

	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.Header.Set(headerRequestID, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, request)
	req.Equal("req-1", w.Header().Get(headerRequestID))

	req.Equal(2, logs.FilterMessage("access").Len())
	inside := logs.FilterMessage("inside").FilterField(zap.String("request_id", "req-1"))
	req.Equal(1, inside.Len())
}

func TestLevelHTTPHandler(t *testing.T) {
	req := require.New(t)
	defer SetLevel("info")
	h := LevelHTTPHandler()

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPut, "/log/level?v=warn", nil))
	req.Equal(http.StatusOK, w.Code)
	req.Equal("warn", w.Body.String())

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/log/level", nil))
	req.JSONEq(`{"level":"warn"}`, w.Body.String())

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPut, "/log/level", strings.NewReader(`{"level":"debug"}`)))
	req.Equal(http.StatusOK, w.Code)
	req.Equal("debug", GetLevel())

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodPut, "/log/level", strings.NewReader("")))
	req.Equal(http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodDelete, "/log/level", nil))
	req.Equal(http.StatusMethodNotAllowed, w.Code)
}

func TestWith_AppendsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))
	ctx = With(ctx, zap.String("topic", "im.result.group"))

	C(ctx).Info("hello")
	require.Equal(t, 1, logs.FilterField(zap.String("topic", "im.result.group")).Len())
}

func TestMetricsCore_CountsEnabledLevels(t *testing.T) {
	req := require.New(t)
	defer SetLevel("info")

	cfg := Config{Service: "metrics-test", Level: "info", Encoding: "json", EnableMetric: true}
	l, err := New(cfg)
	req.NoError(err)

	l.Debug("dropped")
	l.Info("kept")
	l.Named("consumer").Warn("kept")

	req.Zero(testutil.ToFloat64(logCounter.WithLabelValues("metrics-test", "debug", "root")))
	req.Equal(1.0, testutil.ToFloat64(logCounter.WithLabelValues("metrics-test", "info", "root")))
	req.Equal(1.0, testutil.ToFloat64(logCounter.WithLabelValues("metrics-test", "warn", "consumer")))
}
