package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// UpdateRequest 更新分类请求
type UpdateRequest struct {
	Identity *auth.Identity
	ID       string
	Title    *string
}

// UpdateCategoryUseCase 更新分类
// 流程：鉴权 → 校验ID → 合并校验并写入 → 删除缓存 → 发布事件
type UpdateCategoryUseCase struct {
	repo   category.Repository
	lookup *Lookup
	events *event.Publisher
}

// NewUpdateCategoryUseCase 创建用例
func NewUpdateCategoryUseCase(repo category.Repository, lookup *Lookup, events *event.Publisher) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo, lookup: lookup, events: events}
}

// Execute 执行更新，分类不存在时返回ErrCategoryNotFound
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateRequest) (c *category.Category, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceCategory, usecase.OpUpdate)
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
	c, err = uc.repo.UpdateByID(ctx, id, category.Patch{Title: req.Title})
	uc.lookup.Invalidate(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceCategory, event.ActionUpdated, c.ID, c.Title, req.Identity.UserID))
	return c, nil
}
