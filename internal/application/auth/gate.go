// Package auth 写操作的鉴权门禁
//
// 所有图书/分类的创建、更新、删除在修改存储之前都必须通过Gate.Authorize；
// 读操作（单条查询、列表）不经过门禁。
// 返回的Identity只作为"已登录"的凭证，不做资源归属校验。
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
)

// ErrTokenRevoked 已登出的Token
var ErrTokenRevoked = apperrors.New(apperrors.ErrCodeInvalidToken, "Token已失效，请重新登录")

// Identity 通过鉴权的调用方
type Identity struct {
	UserID    string
	Email     string
	Name      string
	Token     string    // 原始Access Token（登出时加入黑名单）
	ExpiresAt time.Time // Token过期时间
}

// Gate 鉴权门禁
// Token签名和有效期由jwt.Manager校验，登出的Token由黑名单拦截
type Gate struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewGate 创建鉴权门禁
func NewGate(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *Gate {
	return &Gate{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Authorize 校验Authorization头（Bearer <token>）
// 缺失、格式错误、签名错误、已过期、已登出都返回401xx错误码（HTTP 403）
func (g *Gate) Authorize(ctx context.Context, credential string) (*Identity, error) {
	token, err := BearerToken(credential)
	if err != nil {
		return nil, err
	}

	claims, err := g.jwtManager.ParseAccessToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := g.sessionStore.IsInBlacklist(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	identity := &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Token:  token,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// BearerToken 从Authorization头提取Token
// 格式：Authorization: Bearer <token>，scheme不区分大小写
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", apperrors.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.New(apperrors.ErrCodeInvalidToken, "Token格式错误")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidToken, "Token格式错误")
	}
	return token, nil
}

type identityKey struct{}

// WithIdentity 把Identity放入context
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext 从context取出Identity，未鉴权时返回nil
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey{}).(*Identity)
	return identity
}
