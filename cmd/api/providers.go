package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/docs"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/fixture"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

// seedTimeout 启动时写入初始数据的超时时间
const seedTimeout = 30 * time.Second

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
	Seed   *fixture.Lookup
}

func newApp(engine *gin.Engine, seed *fixture.Lookup) *App {
	return &App{Engine: engine, Seed: seed}
}

// provideDB 数据库连接，cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideRedis Redis连接，cleanup时关闭
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// provideEventPublisher 目录变更事件发布器
// 未启用或连接失败时使用NopPublisher：事件是尽力而为的，不影响写操作
func provideEventPublisher(cfg *config.Config) (mq.EventPublisher, func()) {
	if !cfg.MQ.Enabled {
		return mq.NopPublisher{}, func() {}
	}
	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		logger.L().Warn("mq unavailable, catalog events disabled", zap.Error(err))
		return mq.NopPublisher{}, func() {}
	}
	return pub, func() { _ = pub.Close() }
}

// provideCategoryCache 分类缓存，Redis调用经过熔断器，状态变化和调用结果写入指标
func provideCategoryCache(client *goredis.Client, cfg *config.Config) *redis.CategoryCache {
	breaker := circuitbreaker.NewCircuitBreaker("category-cache", circuitbreaker.DefaultConfig())
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		logger.L().Warn("circuit breaker state changed",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		if metrics.CircuitBreakerState != nil {
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		}
	})
	breaker.SetResultCallback(func(name, result string) {
		if metrics.CircuitBreakerRequests != nil {
			metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": name, "result": result})
		}
	})
	return redis.NewCategoryCache(client, cfg.Redis.CategoryTTL, breaker)
}

func provideUserService(repo user.Repository) user.Service {
	return user.NewService(repo)
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideSeed 写入初始数据，并把种子记录的ID写入API文档示例
// fixture.enabled=false时返回空映射
func provideSeed(cfg *config.Config, loader *fixture.Loader) (*fixture.Lookup, error) {
	if !cfg.Fixture.Enabled {
		return &fixture.Lookup{UsersByEmail: map[string]string{}, CategoriesByTitle: map[string]string{}}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	seed, err := loader.Seed(ctx)
	if err != nil {
		return nil, err
	}
	docs.ApplyExamples(docs.Examples{
		CategoryID: seed.CategoriesByTitle["Classic Literature"],
		UserID:     seed.UsersByEmail["john.doe@example.com"],
	})
	return seed, nil
}
