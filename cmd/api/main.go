package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// shutdownTimeout 优雅关闭等待时间
const shutdownTimeout = 10 * time.Second

// @title           Book Catalog API
// @version         1.0
// @description     图书与分类目录服务：列表查询、分类展开、写操作鉴权
// @host            localhost:5000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Bearer <access_token>
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志
	logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
		MaxSizeMB:    cfg.Log.MaxSizeMB,
		MaxBackups:   cfg.Log.MaxBackups,
		MaxAgeDays:   cfg.Log.MaxAgeDays,
		Compress:     cfg.Log.Compress,
	})
	defer logger.Sync()

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			logger.L().Fatal("初始化链路追踪失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.L().Warn("关闭链路追踪失败", zap.Error(err))
			}
		}()
	}

	// 4. 指标
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	// 5. 依赖注入（数据库、Redis、初始数据、路由）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		logger.L().Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	logger.L().Info("seed data loaded",
		zap.Int("users", len(app.Seed.UsersByEmail)),
		zap.Int("categories", len(app.Seed.CategoriesByTitle)),
	)

	// 6. 启动HTTP服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.L().Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
			zap.String("database", cfg.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 7. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("服务关闭超时", zap.Error(err))
	}
}
