package category

import (
	"context"
	"errors"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// GetCategoryUseCase 查询单个分类
// 分类不存在时返回(nil, nil)，接口输出null而不是404
type GetCategoryUseCase struct {
	repo category.Repository
}

// NewGetCategoryUseCase 创建用例
func NewGetCategoryUseCase(repo category.Repository) *GetCategoryUseCase {
	return &GetCategoryUseCase{repo: repo}
}

// Execute 执行查询
func (uc *GetCategoryUseCase) Execute(ctx context.Context, rawID string) (c *category.Category, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceCategory, usecase.OpGet)
	defer func() { done(err) }()

	id, err := usecase.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	c, err = uc.repo.FindByID(ctx, id)
	if errors.Is(err, category.ErrCategoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
