package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EthanQC/im-router/pkg/zlog"
)

// NewEngine 组装 gin 引擎：业务路由挂在 /api/v1 下，另带指标、日志级别和健康检查
func NewEngine(controller *RouterController, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(zlog.GinLogger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.Any("/log/level", gin.WrapF(zlog.LevelHTTPHandler()))

	controller.RegisterRoutes(r.Group("/api/v1"))
	return r
}
