package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
)

// CategoryCache 分类缓存（Cache-Aside）
//
// 1. 图书读取展开分类时先查缓存，未命中再查数据库并回填
// 2. 分类更新/删除后删除缓存，已删除的分类立即解析为null
// 3. Redis调用经过熔断器，Redis故障时快速失败，调用方直接查数据库
type CategoryCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewCategoryCache 创建分类缓存
func NewCategoryCache(client *redis.Client, ttl time.Duration, breaker *circuitbreaker.CircuitBreaker) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl, breaker: breaker}
}

// Get 未命中时返回(nil, nil)
func (c *CategoryCache) Get(ctx context.Context, id string) (*category.Category, error) {
	var val string
	err := c.breaker.Execute(func() error {
		var err error
		val, err = c.client.Get(ctx, categoryKey(id)).Result()
		if errors.Is(err, redis.Nil) {
			// 未命中不算失败
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("获取分类缓存失败: %w", err)
	}
	if val == "" {
		return nil, nil
	}

	var cat category.Category
	if err := json.Unmarshal([]byte(val), &cat); err != nil {
		return nil, fmt.Errorf("反序列化分类缓存失败: %w", err)
	}
	return &cat, nil
}

// Set 写入缓存
func (c *CategoryCache) Set(ctx context.Context, cat *category.Category) error {
	val, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("序列化分类失败: %w", err)
	}

	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, categoryKey(cat.ID), val, c.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("写入分类缓存失败: %w", err)
	}
	return nil
}

// Invalidate 删除缓存（更新数据库后删除缓存）
func (c *CategoryCache) Invalidate(ctx context.Context, id string) error {
	err := c.breaker.Execute(func() error {
		return c.client.Del(ctx, categoryKey(id)).Err()
	})
	if err != nil {
		return fmt.Errorf("删除分类缓存失败: %w", err)
	}
	return nil
}

func categoryKey(id string) string {
	return fmt.Sprintf("catalog:category:%s", id)
}
