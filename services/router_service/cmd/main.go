package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/EthanQC/im-router/pkg/zlog"
	httpAdapter "github.com/EthanQC/im-router/services/router_service/internal/adapters/in/http"
	mqIn "github.com/EthanQC/im-router/services/router_service/internal/adapters/in/mq"
	"github.com/EthanQC/im-router/services/router_service/internal/adapters/out/listener"
	mqOut "github.com/EthanQC/im-router/services/router_service/internal/adapters/out/mq"
	redisRepo "github.com/EthanQC/im-router/services/router_service/internal/adapters/out/redis"
	"github.com/EthanQC/im-router/services/router_service/internal/application"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/out"
)

func main() {
	// 加载配置
	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志，与服务共用同一个配置文件
	logCfg, err := zlog.FromViper(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载日志配置失败: %v\n", err)
		os.Exit(1)
	}
	if logCfg.Service == "unknown" {
		logCfg.Service = "router-service"
	}
	flush := zlog.MustInitGlobal(*logCfg)
	defer flush()

	logger := zap.L()
	logger.Info("router_service starting", zap.String("env", os.Getenv("APP_ENV")))

	// 指标
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	zlog.RegisterMetrics(registry)
	mqOut.RegisterMetrics(registry)
	listener.RegisterMetrics(registry)

	// 初始化Redis
	redisClient, err := initRedis()
	if err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer redisClient.Close()

	presenceStore := redisRepo.NewPresenceStoreRedis(redisClient)

	var offlineInbox out.OfflineInbox
	if viper.GetBool("offline.enabled") {
		offlineInbox = redisRepo.NewOfflineInboxRedis(
			redisClient,
			viper.GetDuration("offline.ttl"),
			viper.GetInt64("offline.max_len"),
		)
	}

	// 注册监听器，构建广播器后注册表即封存
	listeners := application.NewListenerRegistry()
	if err := listener.RegisterBuiltins(listeners, listener.Options{
		Logger: logger.Named("send_result"),
		Inbox:  offlineInbox,
	}); err != nil {
		logger.Fatal("Failed to register listeners", zap.Error(err))
	}

	multicasterLogger := logger
	if viper.GetBool("router.strict_listeners") {
		// 载荷类型不匹配时直接 panic，便于尽早发现监听器声明错误
		multicasterLogger = logger.WithOptions(zap.Development())
	}
	multicaster := application.NewResultMulticaster(listeners, multicasterLogger)

	// 初始化消息队列
	transport, err := initTransport(multicaster)
	if err != nil {
		logger.Fatal("Failed to init mq", zap.Error(err))
	}
	defer transport.close()

	// 初始化应用层
	resolver := application.NewPresenceResolver(presenceStore)
	dispatcher := application.NewMessageDispatcher(resolver, transport.publisher, multicaster)
	routerClient := application.NewRouterClient(dispatcher, resolver)

	// 消费网关回传的发送结果
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if err := transport.consumer.Start(consumeCtx); err != nil {
		logger.Fatal("Failed to start result consumer", zap.Error(err))
	}

	// 初始化HTTP服务器
	if mode := viper.GetString("server.gin_mode"); mode != "" {
		gin.SetMode(mode)
	}
	var offlineLister httpAdapter.OfflineLister
	if offlineInbox != nil {
		offlineLister = offlineInbox
	}
	router := httpAdapter.NewEngine(httpAdapter.NewRouterController(routerClient, offlineLister), registry)

	httpPort := viper.GetInt("server.http_port")
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", httpPort),
		Handler: router,
	}
	go func() {
		logger.Info("HTTP server starting", zap.Int("port", httpPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("HTTP server shutdown error", zap.Error(err))
	}
	stopConsume()
	if err := transport.consumer.Stop(); err != nil {
		logger.Warn("Result consumer stop error", zap.Error(err))
	}

	logger.Info("Servers exited properly")
}

func loadConfig() error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	os.Setenv("APP_ENV", env)

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetDefault("server.http_port", 8090)
	viper.SetDefault("mq.type", "kafka")
	viper.SetDefault("kafka.group_id", "im-router")
	viper.SetDefault("nats.queue", "im-router")
	viper.SetDefault("offline.ttl", 7*24*time.Hour)
	viper.SetDefault("offline.max_len", 1000)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func initRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.addr"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
		PoolSize: viper.GetInt("redis.pool_size"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return client, nil
}

// resultConsumer 发送结果回传通道
type resultConsumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// transport 按 mq.type 选出的投递与回传实现
type transport struct {
	publisher out.EnvelopePublisher
	consumer  resultConsumer
	close     func()
}

func initTransport(multicaster in.ResultMulticaster) (*transport, error) {
	switch mqType := viper.GetString("mq.type"); mqType {
	case "kafka":
		brokers := viper.GetStringSlice("kafka.brokers")
		publisher, err := mqOut.NewKafkaEnvelopePublisher(brokers)
		if err != nil {
			return nil, err
		}
		consumer, err := mqIn.NewKafkaResultConsumer(brokers, viper.GetString("kafka.group_id"), multicaster)
		if err != nil {
			_ = publisher.Close()
			return nil, err
		}
		return &transport{
			publisher: publisher,
			consumer:  consumer,
			close:     func() { _ = publisher.Close() },
		}, nil

	case "nats":
		conn, err := nats.Connect(viper.GetString("nats.url"), nats.Name("im-router"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect nats: %w", err)
		}
		return &transport{
			publisher: mqOut.NewNatsEnvelopePublisher(conn),
			consumer:  mqIn.NewNatsResultSubscriber(conn, viper.GetString("nats.queue"), multicaster),
			close:     func() { _ = conn.Drain() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported mq type %q", mqType)
	}
}
