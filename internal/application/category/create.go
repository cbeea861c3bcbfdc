// Package category 分类用例
package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// CreateRequest 创建分类请求
type CreateRequest struct {
	Identity *auth.Identity
	Title    string
}

// CreateCategoryUseCase 创建分类
// 流程：鉴权 → 校验 → 写入 → 发布事件
type CreateCategoryUseCase struct {
	repo   category.Repository
	events *event.Publisher
}

// NewCreateCategoryUseCase 创建用例
func NewCreateCategoryUseCase(repo category.Repository, events *event.Publisher) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo, events: events}
}

// Execute 执行创建
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateRequest) (c *category.Category, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceCategory, usecase.OpCreate)
	defer func() { done(err) }()

	if err := usecase.RequireIdentity(req.Identity); err != nil {
		return nil, err
	}

	c, err = category.NewCategory(req.Title)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceCategory, event.ActionCreated, c.ID, c.Title, req.Identity.UserID))
	return c, nil
}
