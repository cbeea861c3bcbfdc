package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/query"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 查询计划中的字段名由实现方按列白名单校验,非法字段返回校验错误
type Repository interface {
	// Create 创建图书(含评分),ID由仓储生成
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// Find 按查询计划的过滤、排序、分页查询
	Find(ctx context.Context, plan *query.Plan) ([]*Book, error)

	// Count 统计匹配过滤条件的图书数量
	Count(ctx context.Context, filters []query.Filter) (int64, error)

	// UpdateByID 合并字段并校验完整记录,不存在时返回ErrBookNotFound
	UpdateByID(ctx context.Context, id string, fields Fields) (*Book, error)

	// DeleteByID 删除并返回被删除的记录,不存在时返回ErrBookNotFound
	DeleteByID(ctx context.Context, id string) (*Book, error)
}
