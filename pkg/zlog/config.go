package zlog

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileConfig 本地轮转文件策略
type FileConfig struct {
	Path       string `mapstructure:"path"`        // 日志文件路径，为空则不落盘
	MaxSizeMB  int    `mapstructure:"max_size"`    // 单个文件最大容量（MB）
	MaxBackups int    `mapstructure:"max_backups"` // 保留旧文件数量
	MaxAgeDay  int    `mapstructure:"max_age"`     // 最长保存天数
	Compress   bool   `mapstructure:"compress"`    // 是否 gzip 旧文件
}

// Config 日志配置，对应配置文件中的 log 段
type Config struct {
	Service      string     `mapstructure:"service"`
	Level        string     `mapstructure:"level"`    // debug|info|warn|error
	Encoding     string     `mapstructure:"encoding"` // json|console
	Stdout       bool       `mapstructure:"stdout"`
	Development  bool       `mapstructure:"development"` // 开发模式下 DPanic 会直接 panic
	File         FileConfig `mapstructure:"file"`
	EnableMetric bool       `mapstructure:"enable_metric"`
}

// LoadConfig 从配置文件的 log 段读取日志配置
func LoadConfig(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetEnvPrefix("ZLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read log config failed: %w", err)
	}
	return FromViper(v)
}

// FromViper 从已加载的 viper 实例解析日志配置，服务主配置和日志配置共用一个文件
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("log.service", "unknown")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.stdout", true)
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_backups", 60)
	v.SetDefault("log.file.max_age", 7)
	v.SetDefault("log.enable_metric", true)

	// 逐项读取，嵌套 key 的默认值才会生效
	cfg := Config{
		Service:     v.GetString("log.service"),
		Level:       v.GetString("log.level"),
		Encoding:    v.GetString("log.encoding"),
		Stdout:      v.GetBool("log.stdout"),
		Development: v.GetBool("log.development"),
		File: FileConfig{
			Path:       v.GetString("log.file.path"),
			MaxSizeMB:  v.GetInt("log.file.max_size"),
			MaxBackups: v.GetInt("log.file.max_backups"),
			MaxAgeDay:  v.GetInt("log.file.max_age"),
			Compress:   v.GetBool("log.file.compress"),
		},
		EnableMetric: v.GetBool("log.enable_metric"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 严格校验，非法值直接拒绝，文件参数缺省时补默认值
func (c *Config) Validate() error {
	if c.Service == "" {
		return fmt.Errorf("log config: service is required")
	}

	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log config: level must be one of debug/info/warn/error, got %q", c.Level)
	}

	switch c.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log config: encoding must be json or console, got %q", c.Encoding)
	}

	if !c.Stdout && c.File.Path == "" {
		return fmt.Errorf("log config: file.path is required when stdout is disabled")
	}

	if c.File.Path != "" {
		if c.File.MaxSizeMB <= 0 {
			c.File.MaxSizeMB = 100
		}
		if c.File.MaxBackups < 0 {
			c.File.MaxBackups = 60
		}
		if c.File.MaxAgeDay < 0 {
			c.File.MaxAgeDay = 7
		}
	}
	return nil
}
