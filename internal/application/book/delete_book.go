package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// DeleteBookRequest 删除图书请求
type DeleteBookRequest struct {
	Identity *auth.Identity
	ID       string
}

// DeleteBookUseCase 删除图书，返回展开分类后的被删除记录
type DeleteBookUseCase struct {
	repo     book.Repository
	resolver *book.Resolver
	events   *event.Publisher
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(repo book.Repository, resolver *book.Resolver, events *event.Publisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{repo: repo, resolver: resolver, events: events}
}

// Execute 执行删除，图书不存在时返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, req DeleteBookRequest) (view *book.View, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceBook, usecase.OpDelete)
	defer func() { done(err) }()

	if err := usecase.RequireIdentity(req.Identity); err != nil {
		return nil, err
	}
	id, err := usecase.ParseID(req.ID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceBook, event.ActionDeleted, b.ID, b.Title, req.Identity.UserID))
	return uc.resolver.Expand(ctx, b), nil
}
