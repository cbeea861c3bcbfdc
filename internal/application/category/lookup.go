package category

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// 缓存查找结果（指标标签）
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Lookup 图书展开分类时的读路径（Cache-Aside）
// 1. 先查缓存，命中直接返回
// 2. 未命中或缓存故障时查数据库，查到后回填缓存
// 3. 分类不存在返回(nil, nil)
// cache为nil时直接查数据库
type Lookup struct {
	repo  category.Repository
	cache category.Cache
}

// NewLookup 创建分类查找
func NewLookup(repo category.Repository, cache category.Cache) *Lookup {
	return &Lookup{repo: repo, cache: cache}
}

// Lookup 按ID查找分类
func (l *Lookup) Lookup(ctx context.Context, id string) (*category.Category, error) {
	if c := l.cached(ctx, id); c != nil {
		return c, nil
	}

	c, err := l.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, err
	}

	l.fill(ctx, c)
	return c, nil
}

// cached 读缓存，未命中或缓存故障返回nil
func (l *Lookup) cached(ctx context.Context, id string) *category.Category {
	if l.cache == nil {
		return nil
	}
	c, err := l.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.ObserveCacheLookup(cacheError)
		logger.L().Warn("category cache get failed", zap.String("category_id", id), zap.Error(err))
		return nil
	case c != nil:
		metrics.ObserveCacheLookup(cacheHit)
		return c
	default:
		metrics.ObserveCacheLookup(cacheMiss)
		return nil
	}
}

func (l *Lookup) fill(ctx context.Context, c *category.Category) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Set(ctx, c); err != nil {
		logger.L().Warn("category cache set failed", zap.String("category_id", c.ID), zap.Error(err))
	}
}

// LookupMany 批量查找分类，返回ID到分类的映射，不存在的ID不出现在结果中
// 缓存逐个读取，未命中的ID合并为一次数据库查询
func (l *Lookup) LookupMany(ctx context.Context, ids []string) (map[string]*category.Category, error) {
	found := make(map[string]*category.Category, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		if c := l.cached(ctx, id); c != nil {
			found[id] = c
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return found, nil
	}

	list, err := l.repo.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		found[c.ID] = c
		l.fill(ctx, c)
	}
	return found, nil
}

// Invalidate 分类更新/删除后删除缓存
// 删除失败只记日志：缓存有TTL兜底
func (l *Lookup) Invalidate(ctx context.Context, id string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Invalidate(ctx, id); err != nil {
		logger.L().Warn("category cache invalidate failed", zap.String("category_id", id), zap.Error(err))
	}
}
