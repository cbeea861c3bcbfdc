package book

import (
	"context"
	"net/url"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 过滤/排序/投影/分页由query.Translate从查询参数翻译
// 2. 显式传了page时先统计匹配总数，页码越界返回ErrOutOfRange
// 3. 每本图书都展开分类，投影作用在展开后的记录上
// 4. 返回裸数组，不包分页信封
type ListBooksUseCase struct {
	repo         book.Repository
	resolver     *book.Resolver
	defaultLimit int
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(repo book.Repository, resolver *book.Resolver, cfg *config.Config) *ListBooksUseCase {
	return &ListBooksUseCase{
		repo:         repo,
		resolver:     resolver,
		defaultLimit: cfg.Catalog.DefaultPageSize,
	}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, params url.Values) (records []map[string]any, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceBook, usecase.OpList)
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

	books, err := uc.repo.Find(ctx, plan)
	if err != nil {
		return nil, err
	}

	records, err = query.Records(uc.resolver.ExpandAll(ctx, books))
	if err != nil {
		return nil, apperrors.Wrap(err, "序列化图书失败")
	}
	return plan.Projection.ApplyAll(records), nil
}
