package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

const identityKey = "identity"

// AuthMiddleware JWT认证中间件
// 1. 从Authorization头提取Token
// 2. 调用鉴权门禁（签名、有效期、黑名单）
// 3. 将Identity注入gin.Context和请求context
// 鉴权失败时在任何写操作之前返回403
type AuthMiddleware struct {
	gate *auth.Gate
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(gate *auth.Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// RequireAuth 要求登录
// 使用方式：
//
//	books.POST("", authMiddleware.RequireAuth(), bookHandler.Create)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.gate.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// GetIdentity 从Context获取当前登录用户，未登录时返回nil
func GetIdentity(c *gin.Context) *auth.Identity {
	if v, exists := c.Get(identityKey); exists {
		if identity, ok := v.(*auth.Identity); ok {
			return identity
		}
	}
	return auth.FromContext(c.Request.Context())
}
