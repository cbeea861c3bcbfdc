package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// SessionStore 会话存储
// 设计说明：
// 1. 使用Redis存储用户登录会话
// 2. 支持JWT黑名单（用户登出后Token立即失效）
// 3. Key设计：session:{user_id}、blacklist:{token}
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession 保存用户会话（登录时间、IP等），过期时间与Refresh Token一致
func (s *SessionStore) SaveSession(ctx context.Context, userID string, sessionData map[string]interface{}, ttl time.Duration) error {
	key := sessionKey(userID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, sessionData)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "保存会话失败")
	}

	return nil
}

// GetSession 获取用户会话
func (s *SessionStore) GetSession(ctx context.Context, userID string) (map[string]string, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, apperrors.WithCode(apperrors.ErrCodeRedisError, err, "获取会话失败")
	}

	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	return result, nil
}

// DeleteSession 删除用户会话（用于登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "删除会话失败")
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单
// ttl取Token剩余有效期，过期后自动删除，无需手动清理
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token已过期，无需拉黑
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.WithCode(apperrors.ErrCodeRedisError, err, "添加Token到黑名单失败")
	}
	return nil
}

// IsInBlacklist 检查Token是否在黑名单中
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.WithCode(apperrors.ErrCodeRedisError, err, "检查黑名单失败")
	}
	return exists > 0, nil
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}
