package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// LoginUseCase 用户登录用例
// 1. 验证邮箱密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis（失败不影响登录）
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		sessionTTL:   7 * 24 * time.Hour,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.FullName())
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"login_at": time.Now().Unix(),
		"ip":       req.ClientIP,
	}
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.sessionTTL); err != nil {
		logger.L().Warn("save session failed", zap.String("user_id", u.ID), zap.Error(err))
	}

	return &LoginResponse{
		User:         *toUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// 删除会话，并把Access Token加入黑名单直到其自然过期
func (uc *LogoutUseCase) Execute(ctx context.Context, identity *auth.Identity) error {
	if identity == nil {
		return nil
	}

	if err := uc.sessionStore.DeleteSession(ctx, identity.UserID); err != nil {
		return err
	}

	ttl := time.Until(identity.ExpiresAt)
	return uc.sessionStore.AddToBlacklist(ctx, identity.Token, ttl)
}

// RefreshUseCase 用Refresh Token换取新的Access Token
// 登出删除会话后，该用户的Refresh Token不能再换取新Token
type RefreshUseCase struct {
	jwtManager   *jwt.Manager
	userRepo     user.Repository
	sessionStore *redis.SessionStore
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(jwtManager *jwt.Manager, userRepo user.Repository, sessionStore *redis.SessionStore) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager, userRepo: userRepo, sessionStore: sessionStore}
}

// Execute 执行刷新
func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := uc.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := uc.sessionStore.GetSession(ctx, claims.UserID); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	// 用户可能已被删除
	u, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken, u.Email, u.FullName())
	if err != nil {
		return nil, err
	}

	return &RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.jwtManager.AccessTokenExpire().Seconds()),
	}, nil
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
	ClientIP string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
