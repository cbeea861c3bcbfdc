package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// GetBookUseCase 查询单本图书
// 图书不存在时返回(nil, nil)，与更新/删除返回ErrBookNotFound不同
type GetBookUseCase struct {
	repo     book.Repository
	resolver *book.Resolver
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(repo book.Repository, resolver *book.Resolver) *GetBookUseCase {
	return &GetBookUseCase{repo: repo, resolver: resolver}
}

// Execute 执行查询
func (uc *GetBookUseCase) Execute(ctx context.Context, rawID string) (view *book.View, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceBook, usecase.OpGet)
	defer func() { done(err) }()

	id, err := usecase.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.FindByID(ctx, id)
	if errors.Is(err, book.ErrBookNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return uc.resolver.Expand(ctx, b), nil
}
