//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/application/auth"
	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/fixture"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideEventPublisher,
)

// repositorySet 仓储和缓存
var repositorySet = wire.NewSet(
	mysql.NewTxManager,
	mysql.NewUserRepository,
	mysql.NewCategoryRepository,
	mysql.NewBookRepository,
	provideCategoryCache,
	wire.Bind(new(category.Cache), new(*redis.CategoryCache)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	provideUserService,
	appcategory.NewLookup,
	wire.Bind(new(book.CategoryLookup), new(*appcategory.Lookup)),
	book.NewResolver,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	event.NewPublisher,
	appcategory.NewCreateCategoryUseCase,
	appcategory.NewGetCategoryUseCase,
	appcategory.NewListCategoriesUseCase,
	appcategory.NewUpdateCategoryUseCase,
	appcategory.NewDeleteCategoryUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshUseCase,
)

// authSet 鉴权
var authSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	auth.NewGate,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器和路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewCategoryHandler,
	handler.NewUserHandler,
	router.New,
)

// fixtureSet 初始数据
var fixtureSet = wire.NewSet(
	fixture.NewLoader,
	provideSeed,
)

// InitializeApp 组装应用
// 返回的cleanup按依赖的逆序关闭数据库、Redis、消息队列连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		authSet,
		handlerSet,
		fixtureSet,
		newApp,
	)
	return nil, nil, nil
}
