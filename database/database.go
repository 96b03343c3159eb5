package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"expenses/config"
	"expenses/logging"
	"expenses/models"
	"expenses/store"
)

// Open 按配置连接数据库并自动迁移表结构
func Open(cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logging.GormLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1) // sqlite 单写
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		return nil, fmt.Errorf("自动迁移失败: %w", err)
	}

	log.WithField("driver", cfg.Driver).Info("数据库初始化成功")
	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(postgresDSN(cfg)), nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("创建数据库目录失败: %w", err)
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}
}

// postgresDSN 仅在进程时区有 IANA 名称时附带 TimeZone，"Local" 不是 postgres 可识别的时区
func postgresDSN(cfg config.DatabaseConfig) string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	if tz := time.Local.String(); tz != "" && tz != "Local" {
		dsn += " TimeZone=" + tz
	}
	return dsn
}

// NewStore 根据配置创建消费记录存储，返回的 close 用于释放连接
func NewStore(cfg config.DatabaseConfig, log *logrus.Logger) (store.ExpenseStore, func() error, error) {
	if cfg.Driver == "memory" {
		log.Warn("使用内存存储，进程退出后数据将丢失")
		return store.NewMemoryStore(), func() error { return nil }, nil
	}

	db, err := Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return store.NewGormStore(db), sqlDB.Close, nil
}

// Seed 写入示例数据
func Seed(ctx context.Context, s store.ExpenseStore) error {
	now := time.Now()
	lunch, busPass := "Lunch", "Bus pass"
	samples := []models.NewExpense{
		{Amount: 15.50, Category: models.CategoryFood, Note: &lunch, Date: now},
		{Amount: 42.00, Category: models.CategoryTransport, Note: &busPass, Date: now},
		{Amount: 89.99, Category: models.CategoryShopping, Date: now.Add(-24 * time.Hour)},
	}
	for _, e := range samples {
		if _, err := s.Create(ctx, e); err != nil {
			return fmt.Errorf("写入示例数据失败: %w", err)
		}
	}
	return nil
}
