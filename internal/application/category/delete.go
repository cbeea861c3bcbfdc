package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// DeleteRequest 删除请求
type DeleteRequest struct {
	Identity *auth.Identity
	ID       string
}

// DeleteCategoryUseCase 删除分类
// 不级联：引用该分类的图书保留悬空引用，读取时分类解析为null
type DeleteCategoryUseCase struct {
	repo   category.Repository
	lookup *Lookup
	events *event.Publisher
}

// NewDeleteCategoryUseCase 创建用例
func NewDeleteCategoryUseCase(repo category.Repository, lookup *Lookup, events *event.Publisher) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{repo: repo, lookup: lookup, events: events}
}

// Execute 执行删除，返回被删除的分类；不存在时返回ErrCategoryNotFound
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, req DeleteRequest) (c *category.Category, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceCategory, usecase.OpDelete)
	defer func() { done(err) }()

	if err := usecase.RequireIdentity(req.Identity); err != nil {
		return nil, err
	}
	id, err := usecase.ParseID(req.ID)
	if err != nil {
		return nil, err
	}

	// 写前写后各删一次缓存，写入期间回填的旧值由第二次删除清掉
	uc.lookup.Invalidate(ctx, id)
	c, err = uc.repo.DeleteByID(ctx, id)
	uc.lookup.Invalidate(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceCategory, event.ActionDeleted, c.ID, c.Title, req.Identity.UserID))
	return c, nil
}
