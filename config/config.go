package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	App      AppConfig      `mapstructure:"app"`
	Events   EventsConfig   `mapstructure:"events"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	BodyLimit       int64         `mapstructure:"body_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig 数据库配置
// Driver 可选: mysql / postgres / sqlite / memory
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
}

// AppConfig 业务相关配置
type AppConfig struct {
	// Timezone 为空时使用进程本地时区
	Timezone  string          `mapstructure:"timezone"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig 写接口限流配置
type RateLimitConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

// EventsConfig 领域事件（RabbitMQ）配置
type EventsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 只用于填充环境变量，不存在时忽略
	if err := godotenv.Load(); err == nil {
		logrus.Info("已加载 .env 文件")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			logrus.Warnf("无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			logrus.Infof("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/expenses")
		externalViper.AddConfigPath("$HOME/.expenses")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				logrus.Warnf("合并外部配置失败: %v", err)
			} else {
				logrus.Infof("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，例如 EXPENSES_DATABASE_DRIVER=sqlite
	v.SetEnvPrefix("EXPENSES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if cfg.Server.BodyLimit <= 0 {
		cfg.Server.BodyLimit = 1 << 20
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.App.RateLimit.Window <= 0 {
		cfg.App.RateLimit.Window = time.Minute
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// ApplyTimezone 按配置替换进程本地时区。
// 日期解析与月份窗口都基于 time.Local，必须在处理任何请求之前调用。
func ApplyTimezone(cfg *Config) error {
	if cfg.App.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("无效的时区 %q: %w", cfg.App.Timezone, err)
	}
	time.Local = loc
	return nil
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig(log logrus.FieldLogger) {
	if GlobalConfig == nil {
		return
	}
	log.WithFields(logrus.Fields{
		"port":     GlobalConfig.Server.Port,
		"mode":     GlobalConfig.Server.Mode,
		"driver":   GlobalConfig.Database.Driver,
		"database": databaseLabel(GlobalConfig.Database),
		"timezone": time.Local.String(),
		"events":   GlobalConfig.Events.Enabled,
	}).Info("当前配置")
}

func databaseLabel(db DatabaseConfig) string {
	switch db.Driver {
	case "sqlite":
		return db.Path
	case "memory":
		return "in-memory"
	default:
		return fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
	}
}
