// Package book 图书用例
package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// CreateBookRequest 创建图书请求
type CreateBookRequest struct {
	Identity *auth.Identity
	Fields   book.Fields
}

// CreateBookUseCase 创建图书
// 流程：鉴权 → 由标题生成slug并校验 → 写入 → 展开分类 → 发布事件
// 分类ID只校验格式，不检查分类是否存在
type CreateBookUseCase struct {
	repo     book.Repository
	resolver *book.Resolver
	events   *event.Publisher
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(repo book.Repository, resolver *book.Resolver, events *event.Publisher) *CreateBookUseCase {
	return &CreateBookUseCase{repo: repo, resolver: resolver, events: events}
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (view *book.View, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceBook, usecase.OpCreate)
	defer func() { done(err) }()

	if err := usecase.RequireIdentity(req.Identity); err != nil {
		return nil, err
	}

	b, err := book.NewBook(req.Fields)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceBook, event.ActionCreated, b.ID, b.Title, req.Identity.UserID))
	return uc.resolver.Expand(ctx, b), nil
}
