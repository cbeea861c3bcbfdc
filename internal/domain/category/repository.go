package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/query"
)

// Repository 分类仓储接口
// 由domain层定义，infrastructure层实现（MySQL/SQLite）
type Repository interface {
	// Create 插入分类，ID由仓储生成
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id string) (*Category, error)

	// FindByIDs 批量查找，不存在的ID直接忽略
	FindByIDs(ctx context.Context, ids []string) ([]*Category, error)

	// Find 按查询计划的过滤、排序、分页查询
	Find(ctx context.Context, plan *query.Plan) ([]*Category, error)

	// Count 统计匹配过滤条件的记录数
	Count(ctx context.Context, filters []query.Filter) (int64, error)

	// UpdateByID 合并补丁并校验，不存在时返回ErrCategoryNotFound
	UpdateByID(ctx context.Context, id string, patch Patch) (*Category, error)

	// DeleteByID 删除并返回被删除的记录，不存在时返回ErrCategoryNotFound
	DeleteByID(ctx context.Context, id string) (*Category, error)
}

// Cache 分类缓存（Relationship Resolver读路径使用）
type Cache interface {
	Get(ctx context.Context, id string) (*Category, error)
	Set(ctx context.Context, c *Category) error
	Invalidate(ctx context.Context, id string) error
}
