// Package router 注册HTTP路由和全局中间件
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// New 创建Gin引擎并注册全部路由
//
// 路由规则：
//   - /api/book、/api/category：GET公开，POST/PUT/DELETE需要登录
//   - /api/user：注册、登录、刷新公开，登出需要登录
//   - 未匹配的路径返回404 {code, message}
func New(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logger(), middleware.CORS(cfg.CORS))
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 /swagger/index.html 查看API文档
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		books := api.Group("/book")
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.Create)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.Update)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.Delete)
		}

		categories := api.Group("/category")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", authMiddleware.RequireAuth(), categoryHandler.Create)
			categories.PUT("/:id", authMiddleware.RequireAuth(), categoryHandler.Update)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), categoryHandler.Delete)
		}

		users := api.Group("/user")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/refresh", userHandler.Refresh)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, apperrors.ErrCodeNotFound, "Not Found - "+c.Request.URL.Path)
	})

	return r
}
