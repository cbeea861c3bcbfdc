package category

import (
	"context"
	"net/url"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ListCategoriesUseCase 分类列表
// 查询参数由query.Translate翻译为过滤/排序/投影/分页计划
type ListCategoriesUseCase struct {
	repo         category.Repository
	defaultLimit int
}

// NewListCategoriesUseCase 创建用例
func NewListCategoriesUseCase(repo category.Repository, cfg *config.Config) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{repo: repo, defaultLimit: cfg.Catalog.DefaultPageSize}
}

// Execute 执行列表查询，返回投影后的记录数组
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, params url.Values) (records []map[string]any, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceCategory, usecase.OpList)
	defer func() { done(err) }()

	plan, err := query.Translate(params, uc.defaultLimit)
	if err != nil {
		return nil, err
	}

	if plan.Pagination.PageRequested {
		total, err := uc.repo.Count(ctx, plan.Filters)
		if err != nil {
			return nil, err
		}
		if err := plan.Pagination.CheckRange(total); err != nil {
			return nil, err
		}
	}

	categories, err := uc.repo.Find(ctx, plan)
	if err != nil {
		return nil, err
	}

	records, err = query.Records(categories)
	if err != nil {
		return nil, apperrors.Wrap(err, "序列化分类失败")
	}
	return plan.Projection.ApplyAll(records), nil
}
