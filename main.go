package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"expenses/config"
	"expenses/database"
	"expenses/events"
	"expenses/logging"
	"expenses/router"
)

// @title 记账系统 API
// @version 1.0
// @description 个人消费记录 API，支持消费记录的创建、查询、删除、导出和月度汇总
// @host localhost:3001
// @BasePath /

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	seed        bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 3001 或 :3001")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.BoolVar(&seed, "seed", false, "写入示例数据后退出")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("记账系统 v%s\n", version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg := config.MustLoadConfig(configFile)

	log := logging.New(cfg.Log)

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Infof("命令行指定端口: %s", port)
	}

	if err := config.ApplyTimezone(cfg); err != nil {
		log.Fatalf("设置时区失败: %v", err)
	}

	// 打印配置信息
	config.PrintConfig(log)

	// 初始化存储
	expenseStore, closeStore, err := database.NewStore(cfg.Database, log)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("关闭数据库失败")
		}
	}()

	if seed {
		if err := database.Seed(context.Background(), expenseStore); err != nil {
			log.Fatalf("写入示例数据失败: %v", err)
		}
		log.Info("示例数据写入完成")
		return
	}

	publisher := newPublisher(cfg.Events, log)
	defer publisher.Close()

	// 设置路由
	r := router.SetupRouter(cfg, router.Dependencies{
		Store:  expenseStore,
		Events: publisher,
		Logger: log,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("记账系统已启动: http://localhost%s", cfg.Server.Port)
	log.Infof("Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	if err := serve(ctx, srv, cfg.Server.ShutdownTimeout, log); err != nil {
		log.Fatalf("服务器异常退出: %v", err)
	}
	log.Info("服务器已关闭")
}

// serve 运行 HTTP 服务直到 ctx 结束后优雅关闭；监听失败时返回错误
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log logrus.FieldLogger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("正在关闭服务器...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newPublisher 事件未启用或连接失败时退化为空实现
func newPublisher(cfg config.EventsConfig, log *logrus.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.NoopPublisher{}
	}
	p, err := events.NewAMQPPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.WithError(err).Warn("连接消息队列失败，事件发布已禁用")
		return events.NoopPublisher{}
	}
	return p
}
