package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/application/usecase"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// UpdateBookRequest 更新图书请求
type UpdateBookRequest struct {
	Identity *auth.Identity
	ID       string
	Fields   book.Fields
}

// UpdateBookUseCase 更新图书
// 流程：鉴权 → 校验ID → 合并字段（带标题时重新生成slug）并校验完整记录 → 展开分类 → 发布事件
type UpdateBookUseCase struct {
	repo     book.Repository
	resolver *book.Resolver
	events   *event.Publisher
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(repo book.Repository, resolver *book.Resolver, events *event.Publisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{repo: repo, resolver: resolver, events: events}
}

// Execute 执行更新，图书不存在时返回ErrBookNotFound
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (view *book.View, err error) {
	ctx, done := usecase.Begin(ctx, event.ResourceBook, usecase.OpUpdate)
	defer func() { done(err) }()

	if err := usecase.RequireIdentity(req.Identity); err != nil {
		return nil, err
	}
	id, err := usecase.ParseID(req.ID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.UpdateByID(ctx, id, req.Fields)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(event.ResourceBook, event.ActionUpdated, b.ID, b.Title, req.Identity.UserID))
	return uc.resolver.Expand(ctx, b), nil
}
