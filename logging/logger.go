// Package logging 基于 logrus 的日志初始化
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"expenses/config"
)

// New 按配置创建 logger
func New(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

// GormLevel 将 logrus 级别映射为 gorm 日志级别
func GormLevel(level logrus.Level) gormlogger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return gormlogger.Info
	case level >= logrus.WarnLevel:
		return gormlogger.Warn
	case level >= logrus.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
