package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// CategoryLookup 分类查找
// Lookup未找到时返回(nil, nil)；LookupMany的结果中不包含未找到的ID
type CategoryLookup interface {
	Lookup(ctx context.Context, id string) (*category.Category, error)
	LookupMany(ctx context.Context, ids []string) (map[string]*category.Category, error)
}

// View 展开分类后的图书
type View struct {
	Book
	Category *category.Category `json:"category"`
}

// Resolver 把图书的分类引用展开为分类记录
// 无状态；分类不存在、未设置或查找失败时均解析为null，不返回错误
type Resolver struct {
	lookup CategoryLookup
}

// NewResolver 创建Resolver
func NewResolver(lookup CategoryLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Expand 展开单本图书
func (r *Resolver) Expand(ctx context.Context, b *Book) *View {
	if b == nil {
		return nil
	}
	return &View{Book: *b, Category: r.resolve(ctx, b.CategoryRef())}
}

// ExpandAll 展开列表，所有分类一次批量查找
func (r *Resolver) ExpandAll(ctx context.Context, books []*Book) []*View {
	ids := make([]string, 0, len(books))
	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		id := b.CategoryRef()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	var found map[string]*category.Category
	if len(ids) > 0 {
		var err error
		found, err = r.lookup.LookupMany(ctx, ids)
		if err != nil {
			logger.L().Warn("resolve categories failed",
				zap.Int("count", len(ids)),
				zap.Error(err),
			)
			found = nil
		}
	}

	views := make([]*View, 0, len(books))
	for _, b := range books {
		views = append(views, &View{Book: *b, Category: found[b.CategoryRef()]})
	}
	return views
}

func (r *Resolver) resolve(ctx context.Context, id string) *category.Category {
	if id == "" {
		return nil
	}

	c, err := r.lookup.Lookup(ctx, id)
	if err != nil {
		logger.L().Warn("resolve category failed",
			zap.String("category_id", id),
			zap.Error(err),
		)
		return nil
	}
	return c
}
